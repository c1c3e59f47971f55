// Smoke tool: exercises the leads API client against a configured upstream
// and prints what the normalizer would ingest. Run it with LEADS_API_URL
// and LEADS_API_TOKEN in the environment or a .env file.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/pipetrack/pipetrack/internal/infra/integration/leadsapi"
	"github.com/pipetrack/pipetrack/internal/mapper"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using system environment")
	}

	if os.Getenv("LEADS_API_URL") == "" {
		log.Fatal("LEADS_API_URL must be set")
	}

	client := leadsapi.NewClient(os.Getenv("LEADS_API_URL"), os.Getenv("LEADS_API_TOKEN"))

	fmt.Println("Fetching all leads from upstream...")
	raws, err := client.FetchAll(context.Background())
	if err != nil {
		log.Fatalf("fetch failed: %v", err)
	}

	leads, skipped := mapper.NormalizeAll(raws)
	fmt.Printf("%d raw record(s), %d normalized, %d skipped\n", len(raws), len(leads), skipped)

	for i, lead := range leads {
		if i >= 5 {
			fmt.Printf("... and %d more\n", len(leads)-5)
			break
		}
		fmt.Printf("  #%s %-24s status=%-14s follow-up=%s assignee=%s\n",
			lead.ID, lead.Name, lead.Status, lead.FollowUpDate, lead.AssignedToName)
	}

	users, err := client.FetchUsers(context.Background())
	if err != nil {
		log.Fatalf("bda-users fetch failed: %v", err)
	}
	fmt.Printf("%d BDA user(s)\n", len(users))
}
