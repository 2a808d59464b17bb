package client_test

import (
	"context"
	"fmt"
	"log"

	"github.com/stackroast/stackroast/pkg/client"
)

// Example demonstrates basic usage of the StackRoast client
func Example() {
	c := client.NewClient(client.Config{
		BaseURL: "https://api.stackroast.dev",
	})

	ctx := context.Background()

	// Score a stack without an account
	score, err := c.Scoring().Score(ctx, client.ScoreRequest{
		ToolIDs: []string{"vercel", "supabase", "plausible"},
		Context: client.StackContext{
			ExpectedUsers: 500,
			Budget:        "low",
			UseCase:       "side-project",
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Score: %d/100 (%s)\n", score.Overall, score.Badge)
}

// ExampleClient_Login demonstrates user authentication
func ExampleClient_Login() {
	c := client.NewClient(client.Config{
		BaseURL: "https://api.stackroast.dev",
	})

	resp, err := c.Login(context.Background(), "user@example.com", "password")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Logged in as: %s\n", resp.User.Email)
}

// ExampleStackService_Roast demonstrates roasting a saved stack
func ExampleStackService_Roast() {
	c := client.NewClient(client.Config{
		BaseURL: "https://api.stackroast.dev",
	})

	if _, err := c.Login(context.Background(), "user@example.com", "password"); err != nil {
		log.Fatal(err)
	}

	roast, err := c.Stacks().Roast(context.Background(), "2f1c9a7e-demo")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s (burn score %d)\n", roast.Text, roast.BurnScore)
}

// ExampleRecommendationService_Hosting demonstrates getting a hosting
// recommendation for a context
func ExampleRecommendationService_Hosting() {
	c := client.NewClient(client.Config{
		BaseURL: "https://api.stackroast.dev",
	})

	rec, err := c.Recommendations().Hosting(context.Background(), client.StackContext{
		ExpectedUsers: 8000,
		Complexity:    "high",
		UseCase:       "production",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Recommended: %s (%d)\n", rec.Tool, rec.Score)
}
