package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"canteen/internal/models/db_models"
	"canteen/internal/models/response_models"
	"canteen/internal/repositories"
	"canteen/pkg/utils"
)

const subscriptionDays = 30

type MealServiceInterface interface {
	IsEntitled(ctx context.Context, userID uuid.UUID, date string, mealType db_models.MealType) (bool, error)
	PayMeal(ctx context.Context, userID uuid.UUID, date, mealType string) error
	BuySubscription(ctx context.Context, userID uuid.UUID) (*response_models.SubscriptionResponse, error)
	IssueMealForUser(ctx context.Context, userID uuid.UUID, date, mealType string) (*response_models.IssueMealResult, error)
	PaidStudents(ctx context.Context, date, mealType string) ([]response_models.PaidStudent, error)
}

type MealService struct {
	userRepo         repositories.UserRepository
	paymentRepo      repositories.PaymentRepository
	subscriptionRepo repositories.SubscriptionRepository
	issuanceRepo     repositories.IssuanceRepository
}

func NewMealService(
	userRepo repositories.UserRepository,
	paymentRepo repositories.PaymentRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	issuanceRepo repositories.IssuanceRepository,
) MealServiceInterface {
	return &MealService{
		userRepo:         userRepo,
		paymentRepo:      paymentRepo,
		subscriptionRepo: subscriptionRepo,
		issuanceRepo:     issuanceRepo,
	}
}

// IsEntitled answers whether a meal is owed: either a one-off payment for
// exactly this (user, date, meal type), or any subscription window of the
// user containing the date. Subscriptions are meal-type-agnostic.
func (s *MealService) IsEntitled(ctx context.Context, userID uuid.UUID, date string, mealType db_models.MealType) (bool, error) {
	paid, err := s.paymentRepo.Exists(ctx, userID, date, mealType)
	if err != nil {
		return false, err
	}
	if paid {
		return true, nil
	}

	return s.subscriptionRepo.ExistsCovering(ctx, userID, date)
}

func (s *MealService) PayMeal(ctx context.Context, userID uuid.UUID, date, mealType string) error {
	if _, err := utils.ParseDate(date); err != nil {
		return err
	}
	mt, ok := db_models.ParseMealType(mealType)
	if !ok {
		return utils.ErrInvalidMealType
	}

	payment := &db_models.MealPayment{
		UserID:   userID,
		Date:     date,
		MealType: mt,
	}

	// Insert-first: the unique index decides "already paid", so two
	// simultaneous payments for the same triple cannot both land.
	if err := s.paymentRepo.Insert(ctx, payment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrAlreadyPaid
		}
		return err
	}
	return nil
}

func (s *MealService) BuySubscription(ctx context.Context, userID uuid.UUID) (*response_models.SubscriptionResponse, error) {
	today := utils.Today()

	active, err := s.subscriptionRepo.ExistsCovering(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, utils.ErrActiveSubscriptionExists
	}

	endDate, err := utils.AddDays(today, subscriptionDays)
	if err != nil {
		return nil, err
	}

	sub := &db_models.Subscription{
		UserID:    userID,
		StartDate: today,
		EndDate:   endDate,
	}
	if err := s.subscriptionRepo.Insert(ctx, sub); err != nil {
		return nil, err
	}

	return &response_models.SubscriptionResponse{
		StartDate: sub.StartDate,
		EndDate:   sub.EndDate,
	}, nil
}

// IssueMealForUser records a hand-out at most once per (user, date, meal
// type). A duplicate insert is a benign repeat, reported via Created=false
// with the existing record rather than an error.
func (s *MealService) IssueMealForUser(ctx context.Context, userID uuid.UUID, date, mealType string) (*response_models.IssueMealResult, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, err
	}
	mt, ok := db_models.ParseMealType(mealType)
	if !ok {
		return nil, utils.ErrInvalidMealType
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	entitled, err := s.IsEntitled(ctx, userID, date, mt)
	if err != nil {
		return nil, err
	}
	if !entitled {
		return nil, utils.ErrNotEntitled
	}

	issued := &db_models.MealIssued{
		UserID:   userID,
		Date:     date,
		MealType: mt,
	}

	result := &response_models.IssueMealResult{
		Created: true,
		Issued: response_models.IssuedMeal{
			UserID:   user.ID,
			Username: user.Username,
			MealType: mealType,
			Date:     date,
		},
	}

	if err := s.issuanceRepo.Insert(ctx, issued); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		// Lost the race or a straight repeat; either way the row exists.
		if _, err := s.issuanceRepo.FindByTriple(ctx, userID, date, mt); err != nil {
			return nil, err
		}
		result.Created = false
	}

	return result, nil
}

func (s *MealService) PaidStudents(ctx context.Context, date, mealType string) ([]response_models.PaidStudent, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, err
	}
	mt, ok := db_models.ParseMealType(mealType)
	if !ok {
		return nil, utils.ErrInvalidMealType
	}

	paidIDs, err := s.paymentRepo.UserIDsByDateAndMealType(ctx, date, mt)
	if err != nil {
		return nil, err
	}
	subIDs, err := s.subscriptionRepo.UserIDsCovering(ctx, date)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(paidIDs)+len(subIDs))
	ids := make([]uuid.UUID, 0, len(paidIDs)+len(subIDs))
	for _, id := range append(paidIDs, subIDs...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	students := make([]response_models.PaidStudent, 0, len(users))
	for _, u := range users {
		students = append(students, response_models.PaidStudent{
			ID:       u.ID,
			Username: u.Username,
			Role:     string(u.Role),
		})
	}
	return students, nil
}
