//go:build js && wasm

package main

import (
	"context"
	"log"

	"github.com/viant/docauth/browser"
)

func main() {
	if _, err := browser.Start(context.Background()); err != nil {
		log.Fatal(err)
	}
	select {}
}
