package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"betagym/internal/config"
	"betagym/internal/database"
	"betagym/internal/domain/contact"
)

// seed fills a development database with sample contact submissions so
// the submissions command has something to page through.
func main() {
	count := flag.Int("n", 12, "number of submissions to insert")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("load env:", err)
	}
	cfg, err := config.LoadSiteRuntimeConfig()
	if err != nil {
		log.Fatal("config:", err)
	}
	if cfg.IsProd() {
		log.Fatal("refusing to seed a production database")
	}

	db, err := database.Connect(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	repo := contact.NewRepository(db)
	log.Println("Running AutoMigrate...")
	if err := repo.Migrate(); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	names := []string{"דנה כהן", "יוסי לוי", "מיכל אברהם", "אורי מזרחי", "נועה פרץ", "איתי ביטון"}
	messages := []string{
		"אשמח לקבל פרטים על מנוי שנתי",
		"האם יש שיעורי יוגה בבוקר?",
		"מעוניין באימון אישי פעמיים בשבוע",
		"מה שעות הפעילות בשישי?",
	}

	svc := contact.NewService(repo, contact.WithIPSalt(cfg.IPHashSalt))
	ctx := context.Background()
	for i := 0; i < *count; i++ {
		rec := contact.Record{
			Fields: contact.Fields{
				Name:    names[i%len(names)],
				Phone:   fmt.Sprintf("05%08d", 1000000+i),
				Email:   fmt.Sprintf("seed%d@example.com", i+1),
				Message: messages[i%len(messages)],
			},
			Origin: contact.Origin{
				SessionID: uuid.NewString(),
				ClientIP:  fmt.Sprintf("10.0.0.%d", i+1),
				UserAgent: "seed",
			},
		}
		if err := svc.Submit(ctx, rec); err != nil {
			log.Fatalf("seed submission %d: %v", i, err)
		}
		time.Sleep(time.Millisecond)
	}

	log.Printf("Seeding completed: %d contact submissions", *count)
}
