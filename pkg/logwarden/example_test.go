package logwarden_test

import (
	"fmt"
	"log"

	"github.com/crimson-sun/logwarden/pkg/logwarden"
)

func Example() {
	w, err := logwarden.New(
		logwarden.WithContamination(0.1),
		logwarden.WithSeed(42),
	)
	if err != nil {
		log.Fatal(err)
	}

	rep, err := w.AnalyzeLines([]string{
		"2026-08-20 09:15:00 | 10.0.0.5 | INFO | Acesso permitido",
		"2026-08-20 09:16:00 | 10.0.0.6 | INFO | Transacao realizada",
		"2026-08-20 09:17:00 | 10.0.0.5 | INFO | Consulta de saldo executada",
		"2026-08-20 23:41:07 | 192.168.1.77 | WARN | Tentativa de acesso indevido",
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, ev := range rep.Events {
		fmt.Printf("%s %s\n", ev.SourceAddr, ev.Category)
	}
	for _, a := range rep.Alerts {
		fmt.Println(a)
	}
}
