package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"painel_master/internal/domain/entities"
	mock_interfaces "painel_master/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testAssociateSettings = AssociateSettings{
	ClientURL:          "https://painel.example.com/",
	WebhookGeneratePix: "https://hooks.example.com/gerar",
}

func newAssociateMocks(t *testing.T) (*mock_interfaces.MockIAssociateRepository, *mock_interfaces.MockIPlanRepository, *mock_interfaces.MockIPasswordHasher, *AssociateUseCase) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIAssociateRepository(ctrl)
	plans := mock_interfaces.NewMockIPlanRepository(ctrl)
	hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
	uc := NewAssociateUseCase(repo, plans, hasher, testAssociateSettings, time.UTC)
	uc.now = func() time.Time { return time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC) }
	return repo, plans, hasher, uc
}

func TestNormalizeUsername(t *testing.T) {
	if got := NormalizeUsername(" Loja Do\tZé "); got != "lojadozé" {
		t.Fatalf("unexpected username %q", got)
	}
}

func TestAssociateUseCase_Create(t *testing.T) {
	in := AssociateInput{Name: "Loja", Username: " Loja Um ", PlanID: "p-1", DueDate: "2024-04-10"}

	t.Run("required fields", func(t *testing.T) {
		_, _, _, uc := newAssociateMocks(t)
		if _, err := uc.Create(context.Background(), AssociateInput{Name: "Loja"}); !errors.Is(err, ErrAssociateFieldsRequired) {
			t.Fatalf("expected ErrAssociateFieldsRequired, got %v", err)
		}
	})

	t.Run("invalid due date", func(t *testing.T) {
		_, _, _, uc := newAssociateMocks(t)
		bad := in
		bad.DueDate = "10/04/2024"
		if _, err := uc.Create(context.Background(), bad); !errors.Is(err, ErrInvalidDueDate) {
			t.Fatalf("expected ErrInvalidDueDate, got %v", err)
		}
	})

	t.Run("username taken", func(t *testing.T) {
		repo, _, _, uc := newAssociateMocks(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "lojaum").Return(entities.Associate{ID: "a-9"}, nil)
		if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
	})

	t.Run("plan not found", func(t *testing.T) {
		repo, plans, _, uc := newAssociateMocks(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "lojaum").Return(entities.Associate{}, nil)
		plans.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Plan{}, nil)
		if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
	})

	t.Run("retired plan", func(t *testing.T) {
		repo, plans, _, uc := newAssociateMocks(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "lojaum").Return(entities.Associate{}, nil)
		plans.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Plan{ID: "p-1", Name: "Pro", Price: 49.9}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrPlanInactive) {
			t.Fatalf("expected ErrPlanInactive, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		repo, plans, hasher, uc := newAssociateMocks(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "lojaum").Return(entities.Associate{}, nil)
		plans.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Plan{ID: "p-1", Name: "Pro", Price: 49.9, Active: true}, nil)
		hasher.EXPECT().Hash(gomock.Any()).DoAndReturn(func(p string) (string, error) { return p, nil })
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Associate{})).DoAndReturn(
			func(_ context.Context, a entities.Associate) (entities.Associate, error) {
				if a.Username != "lojaum" || a.Price != 49.9 || !a.FirstAccess || len(a.Password) != generatedPasswordLength {
					t.Fatalf("unexpected associate: %+v", a)
				}
				if a.WebhookGeneratePix != testAssociateSettings.WebhookGeneratePix {
					t.Fatalf("expected webhook copied from settings, got %q", a.WebhookGeneratePix)
				}
				if !a.DueDate.Equal(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("unexpected due date %v", a.DueDate)
				}
				a.ID = "a-1"
				return a, nil
			},
		)

		res, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Associate.ID != "a-1" || len(res.Password) != generatedPasswordLength {
			t.Fatalf("unexpected result: %+v", res)
		}
		for _, want := range []string{"*lojaum*", "*" + res.Password + "*", "https://painel.example.com/lojaum/", "10/04/2024", "Pro"} {
			if !strings.Contains(res.WelcomeMessage, want) {
				t.Fatalf("welcome message missing %q:\n%s", want, res.WelcomeMessage)
			}
		}
	})
}

func TestAssociateUseCase_List(t *testing.T) {
	repo, plans, _, uc := newAssociateMocks(t)
	repo.EXPECT().List(gomock.Any()).Return([]entities.Associate{
		{ID: "a-1", PlanID: "p-1", DueDate: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)},
		{ID: "a-2", PlanID: "p-old", DueDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "a-3", PlanID: "p-1", DueDate: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)},
	}, nil)
	plans.EXPECT().ListActive(gomock.Any()).Return([]entities.Plan{{ID: "p-1", Name: "Pro"}}, nil)
	plans.EXPECT().GetByID(gomock.Any(), "p-old").Return(entities.Plan{ID: "p-old", Name: "Antigo"}, nil)

	views, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 views, got %d", len(views))
	}
	want := []struct {
		plan  string
		state entities.DueState
	}{
		{"Pro", entities.DueStateExpired},
		{"Antigo", entities.DueStateExpiringSoon},
		{"Pro", entities.DueStateActive},
	}
	for i, w := range want {
		if views[i].PlanName != w.plan || views[i].Due.State != w.state {
			t.Fatalf("view %d: got plan=%s state=%s", i, views[i].PlanName, views[i].Due.State)
		}
	}
}

func TestAssociateUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo, _, _, uc := newAssociateMocks(t)
		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Associate{}, nil)
		_, err := uc.Update(context.Background(), "a-1", AssociateInput{Name: "L", Username: "l", PlanID: "p", DueDate: "2024-01-01"})
		if !errors.Is(err, ErrAssociateNotFound) {
			t.Fatalf("expected ErrAssociateNotFound, got %v", err)
		}
	})

	t.Run("own username is allowed and price is re-snapshotted", func(t *testing.T) {
		repo, plans, _, uc := newAssociateMocks(t)
		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Associate{ID: "a-1", Username: "loja", Password: "keep", Price: 10}, nil)
		repo.EXPECT().GetByUsername(gomock.Any(), "loja").Return(entities.Associate{ID: "a-1"}, nil)
		plans.EXPECT().GetByID(gomock.Any(), "p-2").Return(entities.Plan{ID: "p-2", Price: 99, Active: true}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Associate{})).DoAndReturn(
			func(_ context.Context, a entities.Associate) (entities.Associate, error) {
				if a.Price != 99 || a.PlanID != "p-2" || a.Password != "keep" {
					t.Fatalf("unexpected update: %+v", a)
				}
				return a, nil
			},
		)

		if _, err := uc.Update(context.Background(), "a-1", AssociateInput{Name: "Loja", Username: "loja", PlanID: "p-2", DueDate: "2024-05-01"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cannot move to a retired plan", func(t *testing.T) {
		repo, plans, _, uc := newAssociateMocks(t)
		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Associate{ID: "a-1", Username: "loja", PlanID: "p-1"}, nil)
		repo.EXPECT().GetByUsername(gomock.Any(), "loja").Return(entities.Associate{ID: "a-1"}, nil)
		plans.EXPECT().GetByID(gomock.Any(), "p-2").Return(entities.Plan{ID: "p-2", Price: 99}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Update(context.Background(), "a-1", AssociateInput{Name: "Loja", Username: "loja", PlanID: "p-2", DueDate: "2024-05-01"})
		if !errors.Is(err, ErrPlanInactive) {
			t.Fatalf("expected ErrPlanInactive, got %v", err)
		}
	})

	t.Run("stays on its retired plan", func(t *testing.T) {
		repo, plans, _, uc := newAssociateMocks(t)
		repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Associate{ID: "a-1", Username: "loja", PlanID: "p-1"}, nil)
		repo.EXPECT().GetByUsername(gomock.Any(), "loja").Return(entities.Associate{ID: "a-1"}, nil)
		plans.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Plan{ID: "p-1", Price: 30}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Associate) (entities.Associate, error) { return a, nil },
		)

		if _, err := uc.Update(context.Background(), "a-1", AssociateInput{Name: "Loja", Username: "loja", PlanID: "p-1", DueDate: "2024-05-01"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAssociateUseCase_AccessMessage(t *testing.T) {
	repo, plans, hasher, uc := newAssociateMocks(t)
	repo.EXPECT().GetByID(gomock.Any(), "a-1").Return(entities.Associate{ID: "a-1", Username: "loja", PlanID: "p-1", Password: "$2a$10$x"}, nil)
	plans.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Plan{ID: "p-1", Name: "Pro"}, nil)
	hasher.EXPECT().IsHashed("$2a$10$x").Return(true)

	msg, err := uc.AccessMessage(context.Background(), "a-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(msg, "$2a$") || !strings.Contains(msg, "definida pelo associado") {
		t.Fatalf("hashed password leaked or notice missing:\n%s", msg)
	}
}

func TestAssociateUseCase_Delete(t *testing.T) {
	repo, _, _, uc := newAssociateMocks(t)
	repo.EXPECT().Delete(gomock.Any(), "a-1").Return(false, nil)
	if err := uc.Delete(context.Background(), "a-1"); !errors.Is(err, ErrAssociateNotFound) {
		t.Fatalf("expected ErrAssociateNotFound, got %v", err)
	}
}
