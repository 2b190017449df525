package main

//go:generate go run .

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./schema",
		&gen.Config{
			Target:  "../../gen/ent",
			Package: "github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent",
			Schema:  "github.com/RavishanPerera/oracle-erp-invoice-ocr/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
