package http

import (
	"togetherly/internal/domain/feedback"
	"togetherly/internal/domain/profile"
	"togetherly/internal/domain/subscription"
	"togetherly/internal/domain/usage"
	"togetherly/internal/domain/user"
	"togetherly/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo         user.Repository
	profileRepo      profile.Repository
	subscriptionRepo subscription.Repository
	reconcileJobRepo subscription.ReconcileJobRepository
	usageRepo        usage.Repository
	feedbackRepo     feedback.Repository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		userRepo:         repository.NewUserRepository(c.db, c.log),
		profileRepo:      repository.NewProfileRepository(c.db, c.log),
		subscriptionRepo: repository.NewSubscriptionRepository(c.db, c.log),
		reconcileJobRepo: repository.NewReconcileJobRepository(c.db, c.log),
		usageRepo:        repository.NewGenerationUsageRepository(c.db, c.log),
		feedbackRepo:     repository.NewFeedbackRepository(c.db, c.log),
	}
}
