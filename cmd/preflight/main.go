// Command preflight checks that everything the dashboard is configured to
// talk to is reachable before it is deployed.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/xyz-asif/ecocheck-admin/internal/apiclient"
	"github.com/xyz-asif/ecocheck-admin/internal/config"
	"github.com/xyz-asif/ecocheck-admin/internal/database"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/audit"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/cloudinary"
	apperrors "github.com/xyz-asif/ecocheck-admin/pkg/errors"
)

type check struct {
	name string
	skip string
	run  func(ctx context.Context) error
}

func main() {
	cfg := config.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	checks := []check{
		{
			name: "EcoCheck API at " + cfg.APIBaseURL,
			run: func(ctx context.Context) error {
				// Any answer from the server is enough; only a missing response fails.
				_, err := apiclient.New(cfg.APIBaseURL, cfg.APITimeout).Do(ctx, http.MethodGet, "/reports", nil, "")
				if errors.Is(err, apperrors.ErrNetworkUnreachable) {
					return err
				}
				return nil
			},
		},
		{
			name: "MongoDB session store",
			skip: skipUnless(cfg.SessionStore == "mongo", "SESSION_STORE is "+cfg.SessionStore),
			run: func(ctx context.Context) error {
				db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
				if err != nil {
					return err
				}
				defer db.Disconnect(context.Background())
				return db.HealthCheck(ctx)
			},
		},
		{
			name: "RabbitMQ audit queue " + cfg.AuditQueue,
			skip: skipUnless(cfg.AMQPURL != "", "AMQP_URL not set"),
			run: func(ctx context.Context) error {
				p, err := audit.DialAMQP(cfg.AMQPURL, cfg.AuditQueue)
				if err != nil {
					return err
				}
				return p.Close()
			},
		},
		{
			name: "Cloudinary photo resolution",
			skip: skipUnless(cfg.CloudinaryCloudName != "", "CLOUDINARY_CLOUD_NAME not set"),
			run: func(ctx context.Context) error {
				r, err := cloudinary.NewResolver(cfg.APIBaseURL, cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
				if err != nil {
					return err
				}
				if !r.UsesCloudinary() {
					return fmt.Errorf("credentials incomplete")
				}
				return nil
			},
		},
	}

	failed := 0
	for _, c := range checks {
		if c.skip != "" {
			fmt.Printf("-  %s: skipped (%s)\n", c.name, c.skip)
			continue
		}
		if err := c.run(ctx); err != nil {
			failed++
			fmt.Printf("✗  %s: %v\n", c.name, err)
			continue
		}
		fmt.Printf("✓  %s\n", c.name)
	}

	if failed > 0 {
		fmt.Printf("\n%d check(s) failed\n", failed)
		os.Exit(1)
	}
	fmt.Println("\nAll systems ready.")
}

func skipUnless(enabled bool, reason string) string {
	if enabled {
		return ""
	}
	return reason
}
