package services

import (
	"context"
	"errors"
	"testing"

	"canteen/internal/models/db_models"
	"canteen/pkg/utils"
)

func TestDailyReportCounts(t *testing.T) {
	ctx := context.Background()
	f := newMealFixture()
	service := NewReportService(f.payments, f.subs, f.issued)

	a := f.addStudent("a")
	b := f.addStudent("b")

	_ = f.service.PayMeal(ctx, a, "2026-02-07", "breakfast")
	_ = f.service.PayMeal(ctx, b, "2026-02-07", "breakfast")
	_ = f.service.PayMeal(ctx, a, "2026-02-07", "lunch")
	_ = f.service.PayMeal(ctx, a, "2026-02-08", "breakfast")

	f.subs.subs = append(f.subs.subs, &db_models.Subscription{
		UserID:    b,
		StartDate: "2026-02-01",
		EndDate:   "2026-03-03",
	})

	for _, issue := range []struct {
		user string
		meal string
	}{
		{"a", "breakfast"},
		{"b", "breakfast"},
		{"a", "lunch"},
	} {
		id := a
		if issue.user == "b" {
			id = b
		}
		if _, err := f.service.IssueMealForUser(ctx, id, "2026-02-07", issue.meal); err != nil {
			t.Fatalf("issuance %+v failed: %v", issue, err)
		}
	}

	report, err := service.DailyReport(ctx, "2026-02-07")
	if err != nil {
		t.Fatalf("DailyReport failed: %v", err)
	}

	if report.BreakfastCount != 2 {
		t.Errorf("breakfast_count = %d, want 2", report.BreakfastCount)
	}
	if report.LunchCount != 1 {
		t.Errorf("lunch_count = %d, want 1", report.LunchCount)
	}
	if report.SubscriptionsUsed != 1 {
		t.Errorf("subscriptions_used = %d, want 1", report.SubscriptionsUsed)
	}
	if report.OneTimePayments != 3 {
		t.Errorf("one_time_payments = %d, want 3", report.OneTimePayments)
	}
	if report.MealsIssued != 3 {
		t.Errorf("meals_issued = %d, want 3", report.MealsIssued)
	}
}

func TestDailyReportRejectsBadDate(t *testing.T) {
	f := newMealFixture()
	service := NewReportService(f.payments, f.subs, f.issued)

	if _, err := service.DailyReport(context.Background(), "not-a-date"); !errors.Is(err, utils.ErrInvalidDate) {
		t.Fatalf("got %v, want ErrInvalidDate", err)
	}
}
