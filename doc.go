// Package githubapi provides a Go client for a GitHub-style REST API.
//
// The client authenticates with HTTP Basic credentials resolved from a
// pluggable store, trying the API host first and falling back to the
// companion web host. Read operations degrade to anonymous access when
// no credential resolves; write operations require one.
//
// Basic usage:
//
//	store := credentials.StaticStore{
//	    githubapi.DefaultWebBaseURL: {Username: "octocat", Secret: token},
//	}
//	client, err := githubapi.New(store)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pr, err := client.GetPullRequest(ctx, "octocat/hello-world", 42)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Title:", pr.Title)
//
// Arbitrary endpoints are reachable through the generic entry points:
//
//	user, err := githubapi.Get[githubapi.User](ctx, client, "users/octocat")
//
// HTTP failures surface as *APIError with the status code, parsed
// error payload, and the raw response bytes; connection-level failures
// as *NetworkError; missing credentials for writes as a
// *credentials.ResolveError. All support errors.Is / errors.As.
package githubapi
