package services

import (
	"context"

	"canteen/internal/models/db_models"
	"canteen/internal/models/response_models"
	"canteen/internal/repositories"
	"canteen/pkg/utils"
)

type ReportServiceInterface interface {
	DailyReport(ctx context.Context, date string) (*response_models.DailyReport, error)
	AdminStats(ctx context.Context) (*response_models.AdminStats, error)
}

type ReportService struct {
	paymentRepo      repositories.PaymentRepository
	subscriptionRepo repositories.SubscriptionRepository
	issuanceRepo     repositories.IssuanceRepository
}

func NewReportService(
	paymentRepo repositories.PaymentRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	issuanceRepo repositories.IssuanceRepository,
) ReportServiceInterface {
	return &ReportService{
		paymentRepo:      paymentRepo,
		subscriptionRepo: subscriptionRepo,
		issuanceRepo:     issuanceRepo,
	}
}

// DailyReport is a pure read-side aggregation over the ledgers for one date.
func (s *ReportService) DailyReport(ctx context.Context, date string) (*response_models.DailyReport, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, err
	}

	breakfast, err := s.issuanceRepo.CountByDateAndMealType(ctx, date, db_models.MealBreakfast)
	if err != nil {
		return nil, err
	}
	lunch, err := s.issuanceRepo.CountByDateAndMealType(ctx, date, db_models.MealLunch)
	if err != nil {
		return nil, err
	}
	subscriptions, err := s.subscriptionRepo.CountCovering(ctx, date)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.CountByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	issued, err := s.issuanceRepo.CountByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return &response_models.DailyReport{
		Date:              date,
		BreakfastCount:    breakfast,
		LunchCount:        lunch,
		SubscriptionsUsed: subscriptions,
		OneTimePayments:   payments,
		MealsIssued:       issued,
	}, nil
}

func (s *ReportService) AdminStats(ctx context.Context) (*response_models.AdminStats, error) {
	today := utils.Today()

	payments, err := s.paymentRepo.CountByDate(ctx, today)
	if err != nil {
		return nil, err
	}
	activeSubs, err := s.subscriptionRepo.CountCovering(ctx, today)
	if err != nil {
		return nil, err
	}
	uniqueStudents, err := s.issuanceRepo.CountDistinctUsersByDate(ctx, today)
	if err != nil {
		return nil, err
	}
	issued, err := s.issuanceRepo.CountByDate(ctx, today)
	if err != nil {
		return nil, err
	}

	return &response_models.AdminStats{
		TodayPayments:       payments,
		ActiveSubscriptions: activeSubs,
		UniqueStudentsToday: uniqueStudents,
		MealsIssuedToday:    issued,
	}, nil
}
