package service

import (
	"context"
	"fmt"
	"time"

	"coachdesk/coaching-app/internal/domain"
	"coachdesk/coaching-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. List methods return newest-first, matching the
// sort order of the Mongo implementations; Create stamps ids and timestamps
// the same way.

// --- users ---

type fakeUserRepo struct {
	users map[primitive.ObjectID]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]domain.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.ErrConflict
		}
	}
	user.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return user.ID, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user := u
	return &user, nil
}

// --- clients ---

type fakeClientRepo struct {
	clients map[primitive.ObjectID]domain.Client
	order   []primitive.ObjectID // newest first
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[primitive.ObjectID]domain.Client)}
}

func (r *fakeClientRepo) Create(ctx context.Context, client *domain.Client) (primitive.ObjectID, error) {
	client.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now
	r.clients[client.ID] = *client
	r.order = append([]primitive.ObjectID{client.ID}, r.order...)
	return client.ID, nil
}

func (r *fakeClientRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	client := c
	return &client, nil
}

func (r *fakeClientRepo) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Client, error) {
	var clients []domain.Client
	for _, id := range r.order {
		if c := r.clients[id]; c.CoachID == coachID {
			clients = append(clients, c)
		}
	}
	return clients, nil
}

func (r *fakeClientRepo) Update(ctx context.Context, id primitive.ObjectID, update repository.ClientUpdate) error {
	c, ok := r.clients[id]
	if !ok {
		return repository.ErrNotFound
	}
	if update.Status != nil {
		c.Status = *update.Status
	}
	if update.PaymentStatus != nil {
		c.PaymentStatus = *update.PaymentStatus
	}
	if update.CurrentWorkoutSplit != nil {
		c.CurrentWorkoutSplit = update.CurrentWorkoutSplit
	}
	if update.CurrentMealPlan != nil {
		c.CurrentMealPlan = update.CurrentMealPlan
	}
	if update.CurrentPricingPlan != nil {
		c.CurrentPricingPlan = update.CurrentPricingPlan
	}
	if update.MonthlyRate != nil {
		c.MonthlyRate = update.MonthlyRate
	}
	if update.Notes != nil {
		c.Notes = *update.Notes
	}
	c.UpdatedAt = time.Now().UTC()
	r.clients[id] = c
	return nil
}

// --- progress ---

type fakeProgressRepo struct {
	entries []domain.ClientProgress // newest first
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{}
}

func (r *fakeProgressRepo) Create(ctx context.Context, entry *domain.ClientProgress) (primitive.ObjectID, error) {
	entry.ID = primitive.NewObjectID()
	entry.Date = time.Now().UTC()
	r.entries = append([]domain.ClientProgress{*entry}, r.entries...)
	return entry.ID, nil
}

func (r *fakeProgressRepo) GetByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.ClientProgress, error) {
	var entries []domain.ClientProgress
	for _, e := range r.entries {
		if e.ClientID == clientID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// --- exercises ---

type fakeExerciseRepo struct {
	exercises map[primitive.ObjectID]domain.Exercise
	order     []primitive.ObjectID
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{exercises: make(map[primitive.ObjectID]domain.Exercise)}
}

func (r *fakeExerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	exercise.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now
	r.exercises[exercise.ID] = *exercise
	r.order = append([]primitive.ObjectID{exercise.ID}, r.order...)
	return exercise.ID, nil
}

func (r *fakeExerciseRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	e, ok := r.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	ex := e
	return &ex, nil
}

func (r *fakeExerciseRepo) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Exercise, error) {
	var exercises []domain.Exercise
	for _, id := range r.order {
		if e := r.exercises[id]; e.CoachID == coachID {
			exercises = append(exercises, e)
		}
	}
	return exercises, nil
}

// --- workouts ---

type fakeWorkoutRepo struct {
	workouts map[primitive.ObjectID]domain.Workout
	order    []primitive.ObjectID
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: make(map[primitive.ObjectID]domain.Workout)}
}

func (r *fakeWorkoutRepo) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	workout.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now
	r.workouts[workout.ID] = *workout
	r.order = append([]primitive.ObjectID{workout.ID}, r.order...)
	return workout.ID, nil
}

func (r *fakeWorkoutRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	w, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	workout := w
	return &workout, nil
}

func (r *fakeWorkoutRepo) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Workout, error) {
	var workouts []domain.Workout
	for _, id := range r.order {
		if w := r.workouts[id]; w.CoachID == coachID {
			workouts = append(workouts, w)
		}
	}
	return workouts, nil
}

// --- splits ---

type fakeSplitRepo struct {
	splits map[primitive.ObjectID]domain.WorkoutSplit
	order  []primitive.ObjectID
}

func newFakeSplitRepo() *fakeSplitRepo {
	return &fakeSplitRepo{splits: make(map[primitive.ObjectID]domain.WorkoutSplit)}
}

func (r *fakeSplitRepo) Create(ctx context.Context, split *domain.WorkoutSplit) (primitive.ObjectID, error) {
	split.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	split.CreatedAt = now
	split.UpdatedAt = now
	r.splits[split.ID] = *split
	r.order = append([]primitive.ObjectID{split.ID}, r.order...)
	return split.ID, nil
}

func (r *fakeSplitRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSplit, error) {
	s, ok := r.splits[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	split := s
	return &split, nil
}

func (r *fakeSplitRepo) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.WorkoutSplit, error) {
	var splits []domain.WorkoutSplit
	for _, id := range r.order {
		if s := r.splits[id]; s.CoachID == coachID {
			splits = append(splits, s)
		}
	}
	return splits, nil
}

// --- meals ---

type fakeMealRepo struct {
	meals map[primitive.ObjectID]domain.Meal
	order []primitive.ObjectID
}

func newFakeMealRepo() *fakeMealRepo {
	return &fakeMealRepo{meals: make(map[primitive.ObjectID]domain.Meal)}
}

func (r *fakeMealRepo) Create(ctx context.Context, meal *domain.Meal) (primitive.ObjectID, error) {
	meal.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	meal.CreatedAt = now
	meal.UpdatedAt = now
	r.meals[meal.ID] = *meal
	r.order = append([]primitive.ObjectID{meal.ID}, r.order...)
	return meal.ID, nil
}

func (r *fakeMealRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Meal, error) {
	m, ok := r.meals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	meal := m
	return &meal, nil
}

func (r *fakeMealRepo) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Meal, error) {
	var meals []domain.Meal
	for _, id := range r.order {
		if m := r.meals[id]; m.CoachID == coachID {
			meals = append(meals, m)
		}
	}
	return meals, nil
}

// --- meal plans ---

type fakeMealPlanRepo struct {
	plans map[primitive.ObjectID]domain.MealPlan
	order []primitive.ObjectID
}

func newFakeMealPlanRepo() *fakeMealPlanRepo {
	return &fakeMealPlanRepo{plans: make(map[primitive.ObjectID]domain.MealPlan)}
}

func (r *fakeMealPlanRepo) Create(ctx context.Context, plan *domain.MealPlan) (primitive.ObjectID, error) {
	plan.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	r.plans[plan.ID] = *plan
	r.order = append([]primitive.ObjectID{plan.ID}, r.order...)
	return plan.ID, nil
}

func (r *fakeMealPlanRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MealPlan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	plan := p
	return &plan, nil
}

func (r *fakeMealPlanRepo) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.MealPlan, error) {
	var plans []domain.MealPlan
	for _, id := range r.order {
		if p := r.plans[id]; p.CoachID == coachID {
			plans = append(plans, p)
		}
	}
	return plans, nil
}

// --- pricing plans ---

type fakePricingRepo struct {
	plans map[primitive.ObjectID]domain.PricingPlan
	order []primitive.ObjectID
}

func newFakePricingRepo() *fakePricingRepo {
	return &fakePricingRepo{plans: make(map[primitive.ObjectID]domain.PricingPlan)}
}

func (r *fakePricingRepo) Create(ctx context.Context, plan *domain.PricingPlan) (primitive.ObjectID, error) {
	plan.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	r.plans[plan.ID] = *plan
	r.order = append([]primitive.ObjectID{plan.ID}, r.order...)
	return plan.ID, nil
}

func (r *fakePricingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PricingPlan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	plan := p
	return &plan, nil
}

func (r *fakePricingRepo) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.PricingPlan, error) {
	var plans []domain.PricingPlan
	for _, id := range r.order {
		if p := r.plans[id]; p.CoachID == coachID {
			plans = append(plans, p)
		}
	}
	return plans, nil
}

// --- forms ---

type fakeFormRepo struct {
	forms map[primitive.ObjectID]domain.Form
	order []primitive.ObjectID
}

func newFakeFormRepo() *fakeFormRepo {
	return &fakeFormRepo{forms: make(map[primitive.ObjectID]domain.Form)}
}

func (r *fakeFormRepo) Create(ctx context.Context, form *domain.Form) (primitive.ObjectID, error) {
	form.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	form.CreatedAt = now
	form.UpdatedAt = now
	r.forms[form.ID] = *form
	r.order = append([]primitive.ObjectID{form.ID}, r.order...)
	return form.ID, nil
}

func (r *fakeFormRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Form, error) {
	f, ok := r.forms[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	form := f
	return &form, nil
}

func (r *fakeFormRepo) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.Form, error) {
	var forms []domain.Form
	for _, id := range r.order {
		if f := r.forms[id]; f.CoachID == coachID {
			forms = append(forms, f)
		}
	}
	return forms, nil
}

// setActive flips a stored form's active flag, bypassing the service.
func (r *fakeFormRepo) setActive(id primitive.ObjectID, active bool) {
	f := r.forms[id]
	f.IsActive = active
	r.forms[id] = f
}

// --- submissions ---

type fakeSubmissionRepo struct {
	submissions map[primitive.ObjectID]domain.FormSubmission
	order       []primitive.ObjectID // newest first
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{submissions: make(map[primitive.ObjectID]domain.FormSubmission)}
}

func (r *fakeSubmissionRepo) Create(ctx context.Context, submission *domain.FormSubmission) (primitive.ObjectID, error) {
	submission.ID = primitive.NewObjectID()
	submission.SubmittedAt = time.Now().UTC()
	r.submissions[submission.ID] = *submission
	r.order = append([]primitive.ObjectID{submission.ID}, r.order...)
	return submission.ID, nil
}

func (r *fakeSubmissionRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FormSubmission, error) {
	s, ok := r.submissions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	submission := s
	return &submission, nil
}

func (r *fakeSubmissionRepo) GetByFormID(ctx context.Context, formID primitive.ObjectID) ([]domain.FormSubmission, error) {
	var submissions []domain.FormSubmission
	for _, id := range r.order {
		if s := r.submissions[id]; s.FormID == formID {
			submissions = append(submissions, s)
		}
	}
	return submissions, nil
}

func (r *fakeSubmissionRepo) Update(ctx context.Context, id primitive.ObjectID, update repository.SubmissionUpdate) error {
	s, ok := r.submissions[id]
	if !ok {
		return repository.ErrNotFound
	}
	if update.Status != nil {
		s.Status = *update.Status
	}
	if update.Notes != nil {
		s.Notes = *update.Notes
	}
	r.submissions[id] = s
	return nil
}

// --- public pages ---

type fakePageRepo struct {
	pages map[primitive.ObjectID]domain.PublicPage
}

func newFakePageRepo() *fakePageRepo {
	return &fakePageRepo{pages: make(map[primitive.ObjectID]domain.PublicPage)}
}

func (r *fakePageRepo) Create(ctx context.Context, page *domain.PublicPage) (primitive.ObjectID, error) {
	for _, p := range r.pages {
		if p.Slug == page.Slug || p.CoachID == page.CoachID {
			return primitive.NilObjectID, repository.ErrConflict
		}
	}
	page.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	page.CreatedAt = now
	page.UpdatedAt = now
	r.pages[page.ID] = *page
	return page.ID, nil
}

func (r *fakePageRepo) GetByCoachID(ctx context.Context, coachID primitive.ObjectID) (*domain.PublicPage, error) {
	for _, p := range r.pages {
		if p.CoachID == coachID {
			page := p
			return &page, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakePageRepo) GetBySlug(ctx context.Context, slug string) (*domain.PublicPage, error) {
	for _, p := range r.pages {
		if p.Slug == slug {
			page := p
			return &page, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakePageRepo) Update(ctx context.Context, id primitive.ObjectID, page *domain.PublicPage) error {
	existing, ok := r.pages[id]
	if !ok {
		return repository.ErrNotFound
	}
	for otherID, p := range r.pages {
		if otherID != id && p.Slug == page.Slug {
			return repository.ErrConflict
		}
	}
	updated := *page
	updated.ID = id
	updated.CoachID = existing.CoachID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	r.pages[id] = updated
	return nil
}

// --- file storage ---

type fakeFileStorage struct {
	deleted []string
}

func (s *fakeFileStorage) GeneratePresignedUploadURL(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error) {
	return fmt.Sprintf("https://storage.test/upload/%s", objectKey), nil
}

func (s *fakeFileStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	return fmt.Sprintf("https://storage.test/download/%s", objectKey), nil
}

func (s *fakeFileStorage) DeleteObject(ctx context.Context, objectKey string) error {
	s.deleted = append(s.deleted, objectKey)
	return nil
}
