package response_models

type DailyReport struct {
	Date              string `json:"date"`
	BreakfastCount    int64  `json:"breakfast_count"`
	LunchCount        int64  `json:"lunch_count"`
	SubscriptionsUsed int64  `json:"subscriptions_used"`
	OneTimePayments   int64  `json:"one_time_payments"`
	MealsIssued       int64  `json:"meals_issued"`
}

type AdminStats struct {
	TodayPayments       int64 `json:"today_payments"`
	ActiveSubscriptions int64 `json:"active_subscriptions"`
	UniqueStudentsToday int64 `json:"unique_students_today"`
	MealsIssuedToday    int64 `json:"meals_issued_today"`
}
