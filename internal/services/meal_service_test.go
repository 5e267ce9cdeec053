package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"canteen/internal/models/db_models"
	"canteen/internal/repositories"
	"canteen/pkg/utils"
)

func tripleKey(userID uuid.UUID, date string, mealType db_models.MealType) string {
	return userID.String() + "|" + date + "|" + string(mealType)
}

type fakeUserRepo struct {
	users map[uuid.UUID]*db_models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*db_models.User)}
}

func (r *fakeUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*db_models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.User, error) {
	var out []db_models.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *db_models.User) error {
	r.users[user.ID] = user
	return nil
}

type fakePaymentRepo struct {
	payments map[string]*db_models.MealPayment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*db_models.MealPayment)}
}

func (r *fakePaymentRepo) Insert(ctx context.Context, payment *db_models.MealPayment) error {
	key := tripleKey(payment.UserID, payment.Date, payment.MealType)
	if _, ok := r.payments[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.payments[key] = payment
	return nil
}

func (r *fakePaymentRepo) Exists(ctx context.Context, userID uuid.UUID, date string, mealType db_models.MealType) (bool, error) {
	_, ok := r.payments[tripleKey(userID, date, mealType)]
	return ok, nil
}

func (r *fakePaymentRepo) CountByDate(ctx context.Context, date string) (int64, error) {
	var n int64
	for _, p := range r.payments {
		if p.Date == date {
			n++
		}
	}
	return n, nil
}

func (r *fakePaymentRepo) UserIDsByDateAndMealType(ctx context.Context, date string, mealType db_models.MealType) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, p := range r.payments {
		if p.Date == date && p.MealType == mealType {
			ids = append(ids, p.UserID)
		}
	}
	return ids, nil
}

type fakeSubscriptionRepo struct {
	subs []*db_models.Subscription
}

func (r *fakeSubscriptionRepo) Insert(ctx context.Context, sub *db_models.Subscription) error {
	r.subs = append(r.subs, sub)
	return nil
}

func covers(sub *db_models.Subscription, date string) bool {
	// ISO dates compare correctly as strings.
	return sub.StartDate <= date && date <= sub.EndDate
}

func (r *fakeSubscriptionRepo) ExistsCovering(ctx context.Context, userID uuid.UUID, date string) (bool, error) {
	for _, s := range r.subs {
		if s.UserID == userID && covers(s, date) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSubscriptionRepo) CountCovering(ctx context.Context, date string) (int64, error) {
	var n int64
	for _, s := range r.subs {
		if covers(s, date) {
			n++
		}
	}
	return n, nil
}

func (r *fakeSubscriptionRepo) UserIDsCovering(ctx context.Context, date string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, s := range r.subs {
		if covers(s, date) {
			ids = append(ids, s.UserID)
		}
	}
	return ids, nil
}

type fakeIssuanceRepo struct {
	issued map[string]*db_models.MealIssued
}

func newFakeIssuanceRepo() *fakeIssuanceRepo {
	return &fakeIssuanceRepo{issued: make(map[string]*db_models.MealIssued)}
}

func (r *fakeIssuanceRepo) Insert(ctx context.Context, issued *db_models.MealIssued) error {
	key := tripleKey(issued.UserID, issued.Date, issued.MealType)
	if _, ok := r.issued[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.issued[key] = issued
	return nil
}

func (r *fakeIssuanceRepo) FindByTriple(ctx context.Context, userID uuid.UUID, date string, mealType db_models.MealType) (*db_models.MealIssued, error) {
	return r.issued[tripleKey(userID, date, mealType)], nil
}

func (r *fakeIssuanceRepo) CountByDate(ctx context.Context, date string) (int64, error) {
	var n int64
	for _, i := range r.issued {
		if i.Date == date {
			n++
		}
	}
	return n, nil
}

func (r *fakeIssuanceRepo) CountByDateAndMealType(ctx context.Context, date string, mealType db_models.MealType) (int64, error) {
	var n int64
	for _, i := range r.issued {
		if i.Date == date && i.MealType == mealType {
			n++
		}
	}
	return n, nil
}

func (r *fakeIssuanceRepo) CountDistinctUsersByDate(ctx context.Context, date string) (int64, error) {
	seen := make(map[uuid.UUID]struct{})
	for _, i := range r.issued {
		if i.Date == date {
			seen[i.UserID] = struct{}{}
		}
	}
	return int64(len(seen)), nil
}

type mealFixture struct {
	users    *fakeUserRepo
	payments *fakePaymentRepo
	subs     *fakeSubscriptionRepo
	issued   *fakeIssuanceRepo
	service  MealServiceInterface
}

func newMealFixture() *mealFixture {
	f := &mealFixture{
		users:    newFakeUserRepo(),
		payments: newFakePaymentRepo(),
		subs:     &fakeSubscriptionRepo{},
		issued:   newFakeIssuanceRepo(),
	}
	f.service = NewMealService(f.users, f.payments, f.subs, f.issued)
	return f
}

func (f *mealFixture) addStudent(username string) uuid.UUID {
	id := uuid.New()
	f.users.users[id] = &db_models.User{
		BaseModel: db_models.BaseModel{ID: id},
		Username:  username,
		Role:      db_models.RoleStudent,
	}
	return id
}

var _ repositories.UserRepository = (*fakeUserRepo)(nil)
var _ repositories.PaymentRepository = (*fakePaymentRepo)(nil)
var _ repositories.SubscriptionRepository = (*fakeSubscriptionRepo)(nil)
var _ repositories.IssuanceRepository = (*fakeIssuanceRepo)(nil)

func TestIsEntitledPaymentAndSubscription(t *testing.T) {
	ctx := context.Background()
	f := newMealFixture()
	userID := f.addStudent("vasya")

	entitled, err := f.service.IsEntitled(ctx, userID, "2026-02-07", db_models.MealBreakfast)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entitled {
		t.Fatal("expected no entitlement without payment or subscription")
	}

	if err := f.service.PayMeal(ctx, userID, "2026-02-07", "breakfast"); err != nil {
		t.Fatalf("PayMeal failed: %v", err)
	}

	entitled, err = f.service.IsEntitled(ctx, userID, "2026-02-07", db_models.MealBreakfast)
	if err != nil || !entitled {
		t.Fatalf("expected entitlement via payment, got %v, %v", entitled, err)
	}

	// Payment is for the exact meal type only.
	entitled, _ = f.service.IsEntitled(ctx, userID, "2026-02-07", db_models.MealLunch)
	if entitled {
		t.Fatal("payment for breakfast must not cover lunch")
	}

	// A covering subscription is meal-type-agnostic.
	other := f.addStudent("petya")
	f.subs.subs = append(f.subs.subs, &db_models.Subscription{
		UserID:    other,
		StartDate: "2026-02-01",
		EndDate:   "2026-03-03",
	})
	for _, mt := range []db_models.MealType{db_models.MealBreakfast, db_models.MealLunch} {
		entitled, err = f.service.IsEntitled(ctx, other, "2026-02-15", mt)
		if err != nil || !entitled {
			t.Fatalf("expected subscription entitlement for %s, got %v, %v", mt, entitled, err)
		}
	}

	// Inclusive on both window bounds, exclusive outside.
	for date, want := range map[string]bool{
		"2026-02-01": true,
		"2026-03-03": true,
		"2026-01-31": false,
		"2026-03-04": false,
	} {
		entitled, _ = f.service.IsEntitled(ctx, other, date, db_models.MealLunch)
		if entitled != want {
			t.Errorf("date %s: entitled = %v, want %v", date, entitled, want)
		}
	}
}

func TestPayMealIsWriteOnce(t *testing.T) {
	ctx := context.Background()
	f := newMealFixture()
	userID := f.addStudent("vasya")

	if err := f.service.PayMeal(ctx, userID, "2026-02-07", "breakfast"); err != nil {
		t.Fatalf("first payment failed: %v", err)
	}
	if err := f.service.PayMeal(ctx, userID, "2026-02-07", "breakfast"); !errors.Is(err, utils.ErrAlreadyPaid) {
		t.Fatalf("second payment: got %v, want ErrAlreadyPaid", err)
	}

	// Another date or meal type is a fresh payment.
	if err := f.service.PayMeal(ctx, userID, "2026-02-07", "lunch"); err != nil {
		t.Fatalf("lunch payment failed: %v", err)
	}
	if err := f.service.PayMeal(ctx, userID, "2026-02-08", "breakfast"); err != nil {
		t.Fatalf("next-day payment failed: %v", err)
	}
}

func TestPayMealValidation(t *testing.T) {
	ctx := context.Background()
	f := newMealFixture()
	userID := f.addStudent("vasya")

	if err := f.service.PayMeal(ctx, userID, "07.02.2026", "breakfast"); !errors.Is(err, utils.ErrInvalidDate) {
		t.Fatalf("bad date: got %v, want ErrInvalidDate", err)
	}
	if err := f.service.PayMeal(ctx, userID, "2026-02-07", "dinner"); !errors.Is(err, utils.ErrInvalidMealType) {
		t.Fatalf("bad meal type: got %v, want ErrInvalidMealType", err)
	}
}

func TestBuySubscriptionRejectsActiveWindow(t *testing.T) {
	ctx := context.Background()
	f := newMealFixture()
	userID := f.addStudent("vasya")

	sub, err := f.service.BuySubscription(ctx, userID)
	if err != nil {
		t.Fatalf("first purchase failed: %v", err)
	}
	if sub.StartDate != utils.Today() {
		t.Errorf("start date = %s, want today", sub.StartDate)
	}
	want, _ := utils.AddDays(utils.Today(), 30)
	if sub.EndDate != want {
		t.Errorf("end date = %s, want %s", sub.EndDate, want)
	}

	if _, err := f.service.BuySubscription(ctx, userID); !errors.Is(err, utils.ErrActiveSubscriptionExists) {
		t.Fatalf("second purchase: got %v, want ErrActiveSubscriptionExists", err)
	}
}

func TestBuySubscriptionAllowsAfterWindowPassed(t *testing.T) {
	ctx := context.Background()
	f := newMealFixture()
	userID := f.addStudent("vasya")

	f.subs.subs = append(f.subs.subs, &db_models.Subscription{
		UserID:    userID,
		StartDate: "2020-01-01",
		EndDate:   "2020-01-31",
	})

	if _, err := f.service.BuySubscription(ctx, userID); err != nil {
		t.Fatalf("purchase after expiry failed: %v", err)
	}
}

func TestIssueMealLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newMealFixture()
	userID := f.addStudent("vasya")

	if err := f.service.PayMeal(ctx, userID, "2026-02-07", "breakfast"); err != nil {
		t.Fatalf("PayMeal failed: %v", err)
	}

	result, err := f.service.IssueMealForUser(ctx, userID, "2026-02-07", "breakfast")
	if err != nil {
		t.Fatalf("first issuance failed: %v", err)
	}
	if !result.Created {
		t.Fatal("first issuance should report Created=true")
	}
	if result.Issued.Username != "vasya" || result.Issued.Date != "2026-02-07" {
		t.Errorf("unexpected issuance payload: %+v", result.Issued)
	}

	// Repeat is benign, no second row.
	result, err = f.service.IssueMealForUser(ctx, userID, "2026-02-07", "breakfast")
	if err != nil {
		t.Fatalf("repeat issuance errored: %v", err)
	}
	if result.Created {
		t.Fatal("repeat issuance should report Created=false")
	}
	if n, _ := f.issued.CountByDate(ctx, "2026-02-07"); n != 1 {
		t.Fatalf("stored rows = %d, want 1", n)
	}

	// Unpaid lunch on the same date is denied.
	if _, err := f.service.IssueMealForUser(ctx, userID, "2026-02-07", "lunch"); !errors.Is(err, utils.ErrNotEntitled) {
		t.Fatalf("unpaid lunch: got %v, want ErrNotEntitled", err)
	}
	if n, _ := f.issued.CountByDate(ctx, "2026-02-07"); n != 1 {
		t.Fatal("denied issuance must not create a row")
	}
}

func TestIssueMealViaSubscription(t *testing.T) {
	ctx := context.Background()
	f := newMealFixture()
	userID := f.addStudent("petya")

	f.subs.subs = append(f.subs.subs, &db_models.Subscription{
		UserID:    userID,
		StartDate: "2026-02-01",
		EndDate:   "2026-03-03",
	})

	result, err := f.service.IssueMealForUser(ctx, userID, "2026-02-15", "lunch")
	if err != nil {
		t.Fatalf("issuance via subscription failed: %v", err)
	}
	if !result.Created {
		t.Fatal("expected Created=true without any payment row")
	}
}

func TestIssueMealUnknownUser(t *testing.T) {
	ctx := context.Background()
	f := newMealFixture()

	if _, err := f.service.IssueMealForUser(ctx, uuid.New(), "2026-02-07", "breakfast"); !errors.Is(err, utils.ErrUserNotFound) {
		t.Fatalf("got %v, want ErrUserNotFound", err)
	}
}

func TestPaidStudentsUnionOfBothPaths(t *testing.T) {
	ctx := context.Background()
	f := newMealFixture()
	payer := f.addStudent("payer")
	subscriber := f.addStudent("subscriber")
	both := f.addStudent("both")
	outsider := f.addStudent("outsider")

	if err := f.service.PayMeal(ctx, payer, "2026-02-07", "breakfast"); err != nil {
		t.Fatal(err)
	}
	if err := f.service.PayMeal(ctx, both, "2026-02-07", "breakfast"); err != nil {
		t.Fatal(err)
	}
	for _, id := range []uuid.UUID{subscriber, both} {
		f.subs.subs = append(f.subs.subs, &db_models.Subscription{
			UserID:    id,
			StartDate: "2026-02-01",
			EndDate:   "2026-03-03",
		})
	}
	_ = outsider

	students, err := f.service.PaidStudents(ctx, "2026-02-07", "breakfast")
	if err != nil {
		t.Fatalf("PaidStudents failed: %v", err)
	}
	if len(students) != 3 {
		t.Fatalf("got %d students, want 3 (deduplicated union)", len(students))
	}
	names := make(map[string]bool, len(students))
	for _, s := range students {
		names[s.Username] = true
	}
	for _, want := range []string{"payer", "subscriber", "both"} {
		if !names[want] {
			t.Errorf("missing %s in paid-students roster", want)
		}
	}
	if names["outsider"] {
		t.Error("outsider must not appear in the roster")
	}
}
