// Command grant gives a user glossary privileges. It is used to bootstrap
// the first glossary administrator and to delegate parts of the hierarchy.
//
// Usage:
//
//	grant --user=alice
//	grant --user=bob --privilege=MANAGE_GLOSSARY_CHILDREN --node=urn:li:glossaryNode:finance
//	grant --user=alice --token
//
// Without --node the privilege is granted platform-wide. With --token an
// access token for the user is printed as well.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/glossary-backend/internal/adapter/postgres"
	"github.com/heartmarshall/glossary-backend/internal/adapter/postgres/privilege"
	"github.com/heartmarshall/glossary-backend/internal/app"
	"github.com/heartmarshall/glossary-backend/internal/auth"
	"github.com/heartmarshall/glossary-backend/internal/config"
	"github.com/heartmarshall/glossary-backend/internal/domain"
)

func main() {
	user := flag.String("user", "", "username to grant the privilege to")
	priv := flag.String("privilege", string(domain.PrivilegeManageGlossaries), "privilege name")
	node := flag.String("node", "", "glossary node urn for node-scoped privileges")
	revoke := flag.Bool("revoke", false, "revoke the privilege instead of granting it")
	token := flag.Bool("token", false, "also print an access token for the user")
	flag.Parse()

	if *user == "" {
		fmt.Fprintln(os.Stderr, "Usage: grant --user=alice [--privilege=MANAGE_GLOSSARIES] [--node=urn:li:glossaryNode:...] [--revoke] [--token]")
		os.Exit(1)
	}

	p := domain.Privilege(*priv)
	if !p.IsValid() {
		log.Fatalf("unknown privilege %q", *priv)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	repo := privilege.New(pool)
	actor := domain.CorpUserUrn(*user)

	switch {
	case *revoke:
		n, err := repo.Revoke(ctx, actor, p)
		if err != nil {
			log.Fatalf("revoke: %v", err)
		}
		fmt.Printf("Revoked %d grant(s) of %s from %s.\n", n, p, actor)
	case *node != "":
		nodeUrn, err := domain.ParseTypedUrn(*node, domain.EntityTypeGlossaryNode)
		if err != nil {
			log.Fatalf("parse node: %v", err)
		}
		if err := repo.GrantEntity(ctx, actor, nodeUrn, p); err != nil {
			log.Fatalf("grant: %v", err)
		}
		fmt.Printf("Granted %s on %s to %s.\n", p, nodeUrn, actor)
	default:
		if err := repo.GrantPlatform(ctx, actor, p); err != nil {
			log.Fatalf("grant: %v", err)
		}
		fmt.Printf("Granted %s to %s.\n", p, actor)
	}

	if *token {
		jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
		tok, err := jwt.GenerateAccessToken(*user)
		if err != nil {
			log.Fatalf("generate token: %v", err)
		}
		fmt.Println(tok)
	}
}
