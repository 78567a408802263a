package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"itg.uk/invoicegen/security"
)

func main() {
	godotenv.Load()

	name := flag.String("name", "invoicing", "token holder name")
	email := flag.String("email", "", "token holder email")
	expiry := flag.Int64("expiry", 60*60*24*30, "expiry in seconds")
	flag.Parse()

	secret := os.Getenv("INVOICEGEN_SIGNING_SECRET")
	if secret == "" {
		log.Fatal("INVOICEGEN_SIGNING_SECRET is not set")
	}

	token, err := security.CreateIdentityToken(&security.Identity{Name: *name, Email: *email}, secret, *expiry)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
