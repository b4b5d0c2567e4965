// Package logwarden provides an embeddable batch anomaly-detection pipeline
// for access logs: it fits an isolation forest over per-record features and
// buckets every record into Normal, Suspicious, or Critical.
//
// Quick start:
//
//	w, err := logwarden.New(logwarden.WithContamination(0.1), logwarden.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, _ := w.AnalyzeLines([]string{
//	    "2026-08-20 09:15:00 | 10.0.0.5 | INFO | Acesso permitido",
//	    "2026-08-20 23:41:07 | 10.0.0.9 | WARN | Tentativa de acesso indevido",
//	})
//	for _, a := range report.Alerts {
//	    fmt.Println(a.String())
//	}
//
// The model is fitted fresh on every Analyze call over the full batch, so
// runs with the same seed and input are reproducible. A Warden is safe for
// concurrent use.
package logwarden
