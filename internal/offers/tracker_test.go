package offers_test

import (
	"context"
	"fmt"
	"testing"

	"career-offer-tracker/internal/models"
)

func TestRecordVisit_NewOfferPrepended(t *testing.T) {
	svc, _ := newTestService(&fakeRemote{})
	ctx := context.Background()

	offer, err := svc.RecordVisit(ctx, "dev-1", "Backend Intern at Acme", "https://example.com/jobs/1", models.SearchParameters{Keywords: "Go"})
	if err != nil {
		t.Fatalf("RecordVisit returned error: %v", err)
	}

	if offer.VisitCount != 1 {
		t.Errorf("VisitCount = %d, want 1", offer.VisitCount)
	}
	if offer.JobType != models.JobTypeInternship {
		t.Errorf("JobType = %q, want internship from title", offer.JobType)
	}
	if offer.Company != "Acme" {
		t.Errorf("Company = %q, want Acme from trailing 'at' pattern", offer.Company)
	}
	if offer.Source != models.DefaultSource {
		t.Errorf("Source = %q, want default", offer.Source)
	}

	recent := svc.ListRecent(ctx, "dev-1")
	if len(recent) != 1 || recent[0].URL != "https://example.com/jobs/1" {
		t.Fatalf("recent = %v, want the visited offer", urls(recent))
	}
}

func TestRecordVisit_CompanyFromNonASCIITitle(t *testing.T) {
	svc, _ := newTestService(&fakeRemote{})
	ctx := context.Background()

	// Lowercasing these titles changes byte lengths ("İ" shrinks, "Ⱥ"
	// grows), so company extraction must not mix offsets between the
	// original and a lowered copy.
	cases := []struct {
		title string
		want  string
	}{
		{"İİİİ Mühendisi at Acme", "Acme"},
		{"ȺȺȺȺ at X", "X"},
		{"Backend Developer AT Globex", "Globex"},
		{"Straße Planner - Initech", "Initech"},
	}
	for i, tc := range cases {
		url := fmt.Sprintf("https://example.com/jobs/nonascii-%d", i)
		offer, err := svc.RecordVisit(ctx, "dev-1", tc.title, url, models.SearchParameters{})
		if err != nil {
			t.Fatalf("RecordVisit(%q) returned error: %v", tc.title, err)
		}
		if offer.Company != tc.want {
			t.Errorf("Company for %q = %q, want %q", tc.title, offer.Company, tc.want)
		}
	}
}

func TestRecordVisit_RepeatVisitIncrementsWithoutDuplicate(t *testing.T) {
	svc, _ := newTestService(&fakeRemote{})
	ctx := context.Background()

	first, _ := svc.RecordVisit(ctx, "dev-1", "QA Engineer", "https://example.com/jobs/1", models.SearchParameters{})
	second, err := svc.RecordVisit(ctx, "dev-1", "QA Engineer", "https://example.com/jobs/1", models.SearchParameters{})
	if err != nil {
		t.Fatalf("RecordVisit returned error: %v", err)
	}

	if second.VisitCount != 2 {
		t.Errorf("VisitCount = %d, want 2 after repeat visit", second.VisitCount)
	}
	if second.LastVisited.Before(first.LastVisited) {
		t.Error("LastVisited moved backwards on repeat visit")
	}

	recent := svc.ListRecent(ctx, "dev-1")
	if len(recent) != 1 {
		t.Fatalf("recent length = %d, want 1 (no duplicate entry)", len(recent))
	}
}

func TestRecordVisit_RepeatVisitMovesToFront(t *testing.T) {
	svc, _ := newTestService(&fakeRemote{})
	ctx := context.Background()

	svc.RecordVisit(ctx, "dev-1", "Job A", "https://example.com/jobs/a", models.SearchParameters{})
	svc.RecordVisit(ctx, "dev-1", "Job B", "https://example.com/jobs/b", models.SearchParameters{})
	svc.RecordVisit(ctx, "dev-1", "Job A", "https://example.com/jobs/a", models.SearchParameters{})

	recent := svc.ListRecent(ctx, "dev-1")
	if len(recent) != 2 {
		t.Fatalf("recent length = %d, want 2", len(recent))
	}
	if recent[0].URL != "https://example.com/jobs/a" {
		t.Errorf("front of recent = %q, want the re-visited offer", recent[0].URL)
	}
}

func TestRecordVisit_EvictsOldestPastBound(t *testing.T) {
	svc, _ := newTestService(&fakeRemote{})
	ctx := context.Background()

	for i := 0; i < models.MaxRecentOffers+1; i++ {
		url := fmt.Sprintf("https://example.com/jobs/%d", i)
		if _, err := svc.RecordVisit(ctx, "dev-1", "Job", url, models.SearchParameters{}); err != nil {
			t.Fatalf("RecordVisit(%d) returned error: %v", i, err)
		}

		recent := svc.ListRecent(ctx, "dev-1")
		if len(recent) > models.MaxRecentOffers {
			t.Fatalf("recent length = %d after %d visits, bound is %d", len(recent), i+1, models.MaxRecentOffers)
		}
	}

	recent := svc.ListRecent(ctx, "dev-1")
	if len(recent) != models.MaxRecentOffers {
		t.Fatalf("recent length = %d, want %d", len(recent), models.MaxRecentOffers)
	}
	// The first-ever visit is the oldest and must be gone.
	for _, o := range recent {
		if o.URL == "https://example.com/jobs/0" {
			t.Error("oldest offer was not evicted")
		}
	}
	if recent[0].URL != fmt.Sprintf("https://example.com/jobs/%d", models.MaxRecentOffers) {
		t.Errorf("front of recent = %q, want the newest visit", recent[0].URL)
	}
}

func TestRecordVisit_FallbackJobTypeFromSearchParams(t *testing.T) {
	svc, _ := newTestService(&fakeRemote{})

	offer, _ := svc.RecordVisit(context.Background(), "dev-1", "Backend Developer", "https://example.com/jobs/1", models.SearchParameters{JobType: "F"})
	if offer.JobType != models.JobTypeFullTime {
		t.Errorf("JobType = %q, want fallback from search parameters", offer.JobType)
	}
}

func TestRecordVisit_LocationFromURLQuery(t *testing.T) {
	svc, _ := newTestService(&fakeRemote{})

	offer, _ := svc.RecordVisit(context.Background(), "dev-1", "Job", "https://example.com/jobs/1?location=Bengaluru", models.SearchParameters{})
	if offer.Location != "Bengaluru" {
		t.Errorf("Location = %q, want value from URL query", offer.Location)
	}
}

func TestRecordVisit_EmptyURLRejected(t *testing.T) {
	svc, _ := newTestService(&fakeRemote{})

	if _, err := svc.RecordVisit(context.Background(), "dev-1", "Job", "   ", models.SearchParameters{}); err == nil {
		t.Error("RecordVisit with empty URL must return an error")
	}
}

func TestRecordVisit_NeverCallsRemote(t *testing.T) {
	remote := &fakeRemote{}
	svc, _ := newTestService(remote)

	svc.RecordVisit(context.Background(), "dev-1", "Job", "https://example.com/jobs/1", models.SearchParameters{})

	if remote.fetchCalls != 0 || len(remote.replaced) != 0 || len(remote.removed) != 0 {
		t.Error("recording a visit must not touch the remote side")
	}
}

func TestListRecent_MalformedStoredStateReadsEmpty(t *testing.T) {
	svc, store := newTestService(&fakeRemote{})
	store.SeedRaw("dev-1", models.CollectionRecent, []byte("{not json"))

	if got := svc.ListRecent(context.Background(), "dev-1"); len(got) != 0 {
		t.Errorf("recent = %v, want empty for malformed stored state", urls(got))
	}
}
