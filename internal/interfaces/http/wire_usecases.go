package http

import (
	"time"

	contentUsecases "togetherly/internal/application/content/usecases"
	profileUsecases "togetherly/internal/application/profile/usecases"
	subscriptionUsecases "togetherly/internal/application/subscription/usecases"
	"togetherly/internal/application/user/usecases"
	"togetherly/internal/domain/subscription"
	"togetherly/internal/domain/usage"
	"togetherly/internal/infrastructure/billing"
	dbutil "togetherly/internal/shared/db"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User / Auth
	registerUC      *usecases.RegisterWithPasswordUseCase
	loginUC         *usecases.LoginWithPasswordUseCase
	requestResetUC  *usecases.RequestPasswordResetUseCase
	resetPasswordUC *usecases.ResetPasswordUseCase
	getUserUC       *usecases.GetUserUseCase
	listUsersUC     *usecases.ListUsersUseCase

	// Profile
	saveProfileUC *profileUsecases.SaveProfileUseCase
	getProfileUC  *profileUsecases.GetProfileUseCase

	// Content
	generatePostsUC  *contentUsecases.GeneratePostsUseCase
	exportCalendarUC *contentUsecases.ExportCalendarUseCase
	contentFlagsUC   *contentUsecases.GetContentFlagsUseCase
	reviewResponseUC *contentUsecases.GenerateReviewResponseUseCase
	submitFeedbackUC *contentUsecases.SubmitFeedbackUseCase

	// Subscription
	checkoutUC     *subscriptionUsecases.CreateCheckoutSessionUseCase
	webhookUC      *subscriptionUsecases.HandleBillingWebhookUseCase
	cancelUC       *subscriptionUsecases.CancelSubscriptionUseCase
	accountUC      *subscriptionUsecases.GetAccountUseCase
	reconcileUC    *subscriptionUsecases.ReconcileSubscriptionsUseCase
	reconcileJobUC *subscriptionUsecases.GetReconcileJobUseCase
}

func (c *Container) initUseCases() {
	cfg := c.cfg
	repos := c.repos
	log := c.log

	resetTTL := time.Duration(cfg.Auth.Token.ResetExpiresMinutes) * time.Minute
	provider := optionalBillingProvider(c.provider)
	textEnhancer := optionalEnhancer(c.enhancer)

	webhookParser := subscriptionUsecases.WebhookParserFunc(func(payload []byte, signature string) (*subscription.WebhookEvent, error) {
		return billing.ParseWebhook(cfg.Billing, payload, signature)
	})

	c.ucs = &allUseCases{
		registerUC:      usecases.NewRegisterWithPasswordUseCase(repos.userRepo, c.hasher, c.jwtSvc, log),
		loginUC:         usecases.NewLoginWithPasswordUseCase(repos.userRepo, c.hasher, c.jwtSvc, log),
		requestResetUC:  usecases.NewRequestPasswordResetUseCase(repos.userRepo, c.emailSvc, resetTTL, log),
		resetPasswordUC: usecases.NewResetPasswordUseCase(repos.userRepo, c.hasher, log),
		getUserUC:       usecases.NewGetUserUseCase(repos.userRepo, log),
		listUsersUC:     usecases.NewListUsersUseCase(repos.userRepo, log),

		saveProfileUC: profileUsecases.NewSaveProfileUseCase(repos.profileRepo, log),
		getProfileUC:  profileUsecases.NewGetProfileUseCase(repos.profileRepo, log),

		generatePostsUC: contentUsecases.NewGeneratePostsUseCase(
			repos.profileRepo,
			repos.userRepo,
			repos.usageRepo,
			usage.NewGate(cfg.Usage.ReelsQuotaMonthly),
			c.flags,
			log,
			contentUsecases.WithEnhancer(textEnhancer, cfg.Enhancer.Timeout()),
			contentUsecases.WithMetrics(c.metrics),
			contentUsecases.WithMaxDays(cfg.Server.MaxDays),
		),
		exportCalendarUC: contentUsecases.NewExportCalendarUseCase(c.templates, c.renderer, log),
		contentFlagsUC:   contentUsecases.NewGetContentFlagsUseCase(c.flags),
		reviewResponseUC: contentUsecases.NewGenerateReviewResponseUseCase(textEnhancer, cfg.Enhancer.Timeout(), log),
		submitFeedbackUC: contentUsecases.NewSubmitFeedbackUseCase(repos.feedbackRepo, log),

		checkoutUC: subscriptionUsecases.NewCreateCheckoutSessionUseCase(repos.userRepo, optionalCheckoutProvider(c.provider), log),
		webhookUC: subscriptionUsecases.NewHandleBillingWebhookUseCase(
			repos.subscriptionRepo, repos.userRepo, webhookParser, provider, c.metrics, log,
		).WithTransactor(dbutil.NewTransactionManager(c.db)),
		cancelUC:  subscriptionUsecases.NewCancelSubscriptionUseCase(repos.subscriptionRepo, repos.userRepo, provider, log),
		accountUC: subscriptionUsecases.NewGetAccountUseCase(repos.userRepo, repos.subscriptionRepo, log),
		reconcileUC: subscriptionUsecases.NewReconcileSubscriptionsUseCase(
			repos.subscriptionRepo,
			repos.userRepo,
			repos.reconcileJobRepo,
			provider,
			c.metrics,
			cfg.Billing.ReconcileTimeout(),
			log,
		),
		reconcileJobUC: subscriptionUsecases.NewGetReconcileJobUseCase(repos.reconcileJobRepo, log),
	}
}
