package usecases

import (
	"context"
	"time"

	"togetherly/internal/domain/subscription"
	"togetherly/internal/domain/user"
	"togetherly/internal/shared/biztime"
	apperrors "togetherly/internal/shared/errors"
	"togetherly/internal/shared/logger"
)

type AccountSubscription struct {
	Status              string     `json:"status"`
	CurrentPeriodEnd    *time.Time `json:"current_period_end"`
	CurrentPeriodEndISO string     `json:"current_period_end_iso"`
	DaysUntilRenewal    int        `json:"days_until_renewal"`
}

type AccountView struct {
	UserID       uint                 `json:"user_id"`
	Email        string               `json:"email"`
	IsPaid       bool                 `json:"is_paid"`
	Subscription *AccountSubscription `json:"subscription"`
}

type GetAccountUseCase struct {
	userRepo user.Repository
	subRepo  subscription.Repository
	now      func() time.Time
	logger   logger.Interface
}

func NewGetAccountUseCase(userRepo user.Repository, subRepo subscription.Repository, logger logger.Interface) *GetAccountUseCase {
	return &GetAccountUseCase{userRepo: userRepo, subRepo: subRepo, now: biztime.NowUTC, logger: logger}
}

func (uc *GetAccountUseCase) Execute(ctx context.Context, userID uint) (*AccountView, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "user_id", userID, "error", err)
		return nil, apperrors.NewInternalError("failed to load account").WithCause(err)
	}
	if u == nil {
		return nil, apperrors.NewUnauthorizedError("sign in required")
	}

	view := &AccountView{UserID: u.ID(), Email: u.Email(), IsPaid: u.IsPaid()}

	sub, err := uc.subRepo.GetLatestByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load subscription", "user_id", userID, "error", err)
		return nil, apperrors.NewInternalError("failed to load account").WithCause(err)
	}
	if sub == nil {
		return view, nil
	}

	as := &AccountSubscription{Status: sub.Status().String(), CurrentPeriodEnd: sub.CurrentPeriodEnd()}
	if end := sub.CurrentPeriodEnd(); end != nil {
		as.CurrentPeriodEndISO = end.UTC().Format(time.RFC3339)
		if sub.Status() != subscription.StatusCanceled {
			as.DaysUntilRenewal = biztime.DaysUntil(uc.now(), *end)
		}
	}
	view.Subscription = as
	return view, nil
}
