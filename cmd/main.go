package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ian-shakespeare/libcc/internal/lex"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: libcc <source file>")
	}

	tokens, err := lex.ScanFile(os.Args[1])
	if err != nil {
		log.Fatal(err.Error())
	}

	for _, token := range tokens {
		fmt.Println(token)
	}
}
