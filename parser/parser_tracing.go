package parser

import (
	"log"
	"strings"
)

const traceIdentPlaceholder string = "\t"

func (p *Parser) identLevel() string {
	return strings.Repeat(traceIdentPlaceholder, p.traceLevel-1)
}

func (p *Parser) tracePrint(fs string) {
	log.Printf("%s%s\n", p.identLevel(), fs)
}

func (p *Parser) trace(msg string) string {
	if p.traceOn {
		p.traceLevel++
		p.tracePrint("BEGIN " + msg)
	}
	return msg
}

func (p *Parser) untrace(msg string) {
	if p.traceOn {
		p.tracePrint("END " + msg)
		p.traceLevel--
	}
}
