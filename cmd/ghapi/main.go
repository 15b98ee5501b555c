// Command ghapi is a small helper for exercising the client against a
// live API. Credentials come from GITHUB_USER / GITHUB_TOKEN, loaded
// from the environment or a .env file.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	githubapi "github.com/repoflow/github-client-go"
	"github.com/repoflow/github-client-go/credentials"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: ghapi <user|pull|status|comment> [args]")
	}

	// Best effort; a missing .env just means plain environment lookup.
	godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	store := credentials.EnvStore{
		UserVar:  "GITHUB_USER",
		TokenVar: "GITHUB_TOKEN",
	}

	client, err := githubapi.New(store)
	if err != nil {
		fatal("create client: %v", err)
	}

	switch os.Args[1] {
	case "user":
		authenticatedUser(ctx, client)
	case "pull":
		if len(os.Args) < 4 {
			fatal("usage: ghapi pull <owner/repo> <number>")
		}
		pull(ctx, client, os.Args[2], os.Args[3])
	case "status":
		if len(os.Args) < 4 {
			fatal("usage: ghapi status <owner/repo> <ref>")
		}
		combinedStatus(ctx, client, os.Args[2], os.Args[3])
	case "comment":
		if len(os.Args) < 5 {
			fatal("usage: ghapi comment <owner/repo> <number> <body>")
		}
		comment(ctx, client, os.Args[2], os.Args[3], os.Args[4])
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func authenticatedUser(ctx context.Context, client *githubapi.Client) {
	user, err := client.AuthenticatedUser(ctx)
	if err != nil {
		fatal("get user: %v", err)
	}
	dump(user)
}

func pull(ctx context.Context, client *githubapi.Client, project, number string) {
	n, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		fatal("invalid pull request number %q", number)
	}

	pr, err := client.GetPullRequest(ctx, project, n)
	if err != nil {
		fatal("get pull request: %v", err)
	}
	dump(pr)
}

func combinedStatus(ctx context.Context, client *githubapi.Client, project, ref string) {
	combined, err := client.GetCombinedStatus(ctx, project, ref)
	if err != nil {
		fatal("get combined status: %v", err)
	}
	dump(combined)
}

func comment(ctx context.Context, client *githubapi.Client, project, number, body string) {
	n, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		fatal("invalid issue number %q", number)
	}

	posted, err := client.AddComment(ctx, project, n, body)
	if err != nil {
		fatal("add comment: %v", err)
	}
	dump(posted)
}

func dump(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fatal("encode output: %v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
