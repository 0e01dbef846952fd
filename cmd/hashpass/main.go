// hashpass genera el pass_hash bcrypt que espera el endpoint de creación de
// usuarios: la API almacena el hash como cadena opaca y hashear es
// responsabilidad del caller.
//
// Uso: hashpass <password> [cost]
package main

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: hashpass <password> [cost]")
		os.Exit(1)
	}

	cost := bcrypt.DefaultCost
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil || n < bcrypt.MinCost || n > bcrypt.MaxCost {
			fmt.Fprintf(os.Stderr, "cost inválido: %s\n", os.Args[2])
			os.Exit(1)
		}
		cost = n
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar hash: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(hash))
}
