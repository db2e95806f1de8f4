package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/adapter/repository"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-notes/internal/usecase/ingest"
	"github.com/johnquangdev/meeting-notes/pkg/config"
	"github.com/johnquangdev/meeting-notes/pkg/metrics"
)

// seedNotes are ingested through the real pipeline, so re-running the seed
// exercises the update path instead of duplicating meetings.
var seedNotes = []struct {
	Path    string
	Content string
}{
	{
		Path: "seed/sprint_planning_2026_08_10.txt",
		Content: `Sprint Planning - Payments Team
Date: August 10, 2026
10:00 AM - 11:30 AM
Location: Conference Room B

Attendees:
- Alice Johnson (alice.johnson@example.com) - Engineering Lead
- Bob Smith (bob.smith@example.com) - Backend Engineer
- Carol Williams (carol.williams@example.com) - Product Manager

Agenda:
- Review sprint goals
- Capacity planning
- Risk review

Discussion:
Refund pipeline rewrite
- Current batch job times out on large merchants
- Bob proposed splitting the job by merchant region
- Needs a migration plan for in-flight refunds

Checkout latency
- p99 regressed to 900ms after the fraud-check rollout
- Caching the fraud verdict looks safe for repeat customers

Action Items:
- Bob Smith to draft the refund pipeline migration plan, due: August 14, 2026 (HIGH PRIORITY)
- Alice Johnson to profile the fraud-check hot path, due: August 12, 2026
- Carol Williams to confirm the merchant comms timeline

Decisions:
- Decision: Split the refund batch job by merchant region
- Agreed: Fraud verdict caching ships behind a flag

Blockers:
- Blocker: Staging environment still runs the old payments schema

Next meeting: August 17, 2026
`,
	},
	{
		Path: "seed/standup_2026_08_17.txt",
		Content: `Team Standup
Date: 2026-08-17
9:30 AM - 9:45 AM

Attendees: Alice Johnson, Bob Smith and Carol Williams

Discussion:
Refund pipeline
- Migration plan reviewed, region split approved
- Dry run scheduled for Wednesday

Action Items:
- Bob Smith to run the refund migration dry run, due: August 19, 2026 (HIGH PRIORITY)
- Alice Johnson to review the flag rollout metrics

Blockers:
- Blocker: Waiting on infra for the staging schema upgrade
`,
	},
	{
		Path: "seed/retrospective_2026_08_21.txt",
		Content: `Sprint Retrospective
Date: August 21, 2026
Location: Zoom

Attendees:
- Alice Johnson
- Bob Smith
- Carol Williams (carol.williams@example.com) - Product Manager

Agenda:
- What went well
- What to improve

Discussion:
What went well
- Refund dry run completed without data loss
- Fraud verdict cache cut p99 to 480ms

What to improve
- Too many interruptions from support escalations
- Flag cleanup keeps slipping

Action Items:
- Carol Williams to set up a support escalation rotation, due: August 26, 2026
- Alice Johnson will remove the fraud cache flag

Decisions:
- Decision: Adopt a weekly flag cleanup slot

Next meeting: August 28, 2026
`,
	},
}

func main() {
	log.Println("🚀 Seeding sample meetings...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	log.Println("✅ Database connected successfully")

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	meetingRepo := repository.NewMeetingRepository(db)
	personRepo := repository.NewPersonRepository(db)
	documentRepo := repository.NewDocumentRepository(db)

	// No object storage and an in-memory cache: the seed only needs the
	// extraction and persistence path.
	ingestService := ingest.NewIngestService(meetingRepo, personRepo, documentRepo, nil, cache.NewMemoryStore(), metrics.NewMetrics(), logger)

	ctx := context.Background()
	for i, note := range seedNotes {
		result, err := ingestService.IngestText(ctx, ingest.Input{
			Content:    note.Content,
			SourcePath: note.Path,
			Origin:     entities.DocumentOriginFile,
		})
		if err != nil {
			log.Printf("❌ Failed to ingest %s: %v", note.Path, err)
			continue
		}

		outcome := "unchanged"
		switch {
		case result.Created:
			outcome = "created"
		case result.Updated:
			outcome = "updated"
		}

		fmt.Printf("═══════════════════════════════════════════════════════\n")
		fmt.Printf("🟢 Meeting %d: %s (%s)\n", i+1, result.Meeting.Title, outcome)
		fmt.Printf("   Attendees: %d  Topics: %d  Actions: %d  Decisions: %d  Blockers: %d\n",
			len(result.Meeting.Attendees),
			len(result.Meeting.Topics),
			len(result.Meeting.ActionItems),
			len(result.Meeting.Decisions),
			len(result.Meeting.Blockers),
		)
	}
	fmt.Printf("═══════════════════════════════════════════════════════\n")

	log.Println("✅ Seed complete")
}
