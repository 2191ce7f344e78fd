// devtoken emite un JWT RS256 para pruebas locales contra la API.
//
// Uso:
//
//	go run ./cmd/devtoken -genkeys                 # crea JWT_PRIVATE_KEY_PATH / JWT_PUBLIC_KEY_PATH
//	go run ./cmd/devtoken -sub ticket-logger -roles ROLE_USER,ROLE_ADMIN
package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/ticket-logger-api/pkg/config"
	"github.com/jhoicas/ticket-logger-api/pkg/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	defaultSub := cfg.JWT.ExpectedSubject
	if defaultSub == "" {
		defaultSub = "ticket-logger"
	}
	sub := flag.String("sub", defaultSub, "subject del token")
	roles := flag.String("roles", "ROLE_USER,"+cfg.JWT.AdminRole, "roles separados por coma")
	exp := flag.Int("exp", cfg.JWT.Expiration, "minutos de validez")
	genKeys := flag.Bool("genkeys", false, "generar un par de llaves RSA 2048 y salir")
	flag.Parse()

	if *genKeys {
		if err := writeKeyPair(cfg.JWT.PrivateKeyPath, cfg.JWT.PublicKeyPath); err != nil {
			fmt.Fprintf(os.Stderr, "Generar llaves: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Llaves escritas en %s y %s\n", cfg.JWT.PrivateKeyPath, cfg.JWT.PublicKeyPath)
		return
	}

	key, err := jwt.LoadPrivateKey(cfg.JWT.PrivateKeyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	var roleList []string
	for _, r := range strings.Split(*roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roleList = append(roleList, r)
		}
	}
	tok, err := jwt.Generate(key, *sub, roleList, cfg.JWT.Issuer, *exp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Firmar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}

func writeKeyPair(privPath, pubPath string) error {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return err
	}
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return err
	}
	if err := writePEM(privPath, "RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(key), 0o600); err != nil {
		return err
	}
	return writePEM(pubPath, "PUBLIC KEY", pubDER, 0o644)
}

func writePEM(path, blockType string, der []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der}), perm)
}
