package usecase

//go:generate mockgen -source=pix_usecase.go -destination=../adapter/http/handlers/mocks/pix_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"painel_master/internal/domain/entities"
	"painel_master/internal/usecase/interfaces"
)

const (
	adminSalesLimit = 1000
	adminLogsLimit  = 500
)

var (
	ErrChargeFieldsRequired = errors.New("client name and a positive amount are required")
	ErrAPIKeyNotConfigured  = errors.New("api key not configured")
	ErrTransactionIDMissing = errors.New("transaction id is required")
)

type SalesReport struct {
	Sales         []entities.PaidTransaction
	Count         int
	TotalReceived float64
}

type PixLogStats struct {
	Total   int `json:"total"`
	Paid    int `json:"pagos"`
	Pending int `json:"pendentes"`
	Expired int `json:"expirados"`
}

type PixLogReport struct {
	Logs  []entities.PixLog
	Stats PixLogStats
}

type VerifiedTransaction struct {
	Transaction entities.TransactionCheck
	Status      entities.NormalizedStatus
}

// IPixUseCase issues and inspects PIX charges on behalf of the logged-in
// identity, always with that identity's provider API key.
type IPixUseCase interface {
	GenerateCharge(ctx context.Context, identity entities.Identity, clientName string, amount float64) (entities.PixCharge, error)
	ListSales(ctx context.Context, identity entities.Identity) (SalesReport, error)
	VerifyTransaction(ctx context.Context, identity entities.Identity, txID string) (VerifiedTransaction, error)
	ListLogs(ctx context.Context, identity entities.Identity, status string) (PixLogReport, error)
}

type PixUseCase struct {
	gateway       interfaces.IPaymentGateway
	logRepo       interfaces.IPixLogRepository
	configRepo    interfaces.IConfigurationRepository
	associateRepo interfaces.IAssociateRepository
	now           func() time.Time
}

var _ IPixUseCase = (*PixUseCase)(nil)

func NewPixUseCase(gateway interfaces.IPaymentGateway, logRepo interfaces.IPixLogRepository, configRepo interfaces.IConfigurationRepository, associateRepo interfaces.IAssociateRepository) *PixUseCase {
	return &PixUseCase{gateway: gateway, logRepo: logRepo, configRepo: configRepo, associateRepo: associateRepo, now: time.Now}
}

// GenerateCharge creates the QR and records it in the caller's log table. A
// failed log write is logged only: the charge already exists at the provider
// and the customer still needs the QR.
func (u *PixUseCase) GenerateCharge(ctx context.Context, identity entities.Identity, clientName string, amount float64) (entities.PixCharge, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" || amount <= 0 {
		return entities.PixCharge{}, ErrChargeFieldsRequired
	}
	apiKey, err := resolveAPIKey(ctx, identity, u.configRepo, u.associateRepo)
	if err != nil {
		return entities.PixCharge{}, err
	}
	if apiKey == "" {
		log.Printf("[pix][usecase] api key missing identity_id=%s", identity.ID)
		return entities.PixCharge{}, ErrAPIKeyNotConfigured
	}

	charge, err := u.gateway.GenerateCharge(ctx, clientName, amount, apiKey)
	if err != nil {
		log.Printf("[pix][usecase] generate failed identity_id=%s err=%v", identity.ID, err)
		return entities.PixCharge{}, err
	}

	entry := entities.PixLog{
		ChargeID:      charge.ChargeID,
		ClientName:    clientName,
		Amount:        amount,
		TransactionID: charge.ExternalTxID,
		Status:        entities.PixLogStatusPending,
		CreatedAt:     u.now(),
	}
	if identity.IsAdmin() {
		entry.CreatedBy = identity.Username
		entry.CreatorName = identity.Name
		_, err = u.logRepo.CreateAdminLog(ctx, entry)
	} else {
		entry.AssociateID = identity.ID
		_, err = u.logRepo.CreateResellerLog(ctx, entry)
	}
	if err != nil {
		log.Printf("[pix][usecase] failed recording charge pix_id=%s err=%v", charge.ChargeID, err)
	}
	log.Printf("[pix][usecase] charge generated pix_id=%s identity_id=%s amount=%.2f", charge.ChargeID, identity.ID, amount)
	return charge, nil
}

// ListSales reads the provider's paid feed for the administrator and the
// reseller's own log otherwise.
func (u *PixUseCase) ListSales(ctx context.Context, identity entities.Identity) (SalesReport, error) {
	var sales []entities.PaidTransaction
	if identity.IsAdmin() {
		apiKey, err := resolveAPIKey(ctx, identity, u.configRepo, u.associateRepo)
		if err != nil {
			return SalesReport{}, err
		}
		if apiKey == "" {
			log.Printf("[pix][usecase] listing sales without api key")
		}
		txs, err := u.gateway.ListPaidTransactions(ctx, adminSalesLimit, apiKey)
		if err != nil {
			return SalesReport{}, err
		}
		sales = make([]entities.PaidTransaction, 0, len(txs))
		for _, t := range txs {
			if entities.NormalizeStatus(t.Status).Category == entities.StatusPaid {
				sales = append(sales, t)
			}
		}
	} else {
		logs, err := u.logRepo.ListByAssociate(ctx, identity.ID)
		if err != nil {
			return SalesReport{}, err
		}
		sales = make([]entities.PaidTransaction, 0, len(logs))
		for _, l := range logs {
			sales = append(sales, entities.PaidTransaction{
				ID:           l.ChargeID,
				ClientName:   l.ClientName,
				GrossAmount:  l.Amount,
				NetAmount:    l.Amount,
				Status:       string(l.Status),
				PaidAt:       formatRowTime(l.CreatedAt),
				ExternalTxID: l.TransactionID,
			})
		}
	}

	received := make([]float64, 0, len(sales))
	for _, s := range sales {
		received = append(received, s.Received())
	}
	return SalesReport{Sales: sales, Count: len(sales), TotalReceived: entities.Sum(received...)}, nil
}

func (u *PixUseCase) VerifyTransaction(ctx context.Context, identity entities.Identity, txID string) (VerifiedTransaction, error) {
	txID = strings.TrimSpace(txID)
	if txID == "" {
		return VerifiedTransaction{}, ErrTransactionIDMissing
	}
	apiKey, err := resolveAPIKey(ctx, identity, u.configRepo, u.associateRepo)
	if err != nil {
		return VerifiedTransaction{}, err
	}
	check, err := u.gateway.VerifyTransaction(ctx, txID, apiKey)
	if err != nil {
		return VerifiedTransaction{}, err
	}
	return VerifiedTransaction{Transaction: check, Status: entities.NormalizeStatus(check.Status)}, nil
}

// ListLogs returns the caller's generated charges, optionally filtered by
// status. Stats always cover the unfiltered set.
func (u *PixUseCase) ListLogs(ctx context.Context, identity entities.Identity, status string) (PixLogReport, error) {
	var (
		logs []entities.PixLog
		err  error
	)
	if identity.IsAdmin() {
		logs, err = u.logRepo.ListAdminLogs(ctx, adminLogsLimit)
	} else {
		logs, err = u.logRepo.ListByAssociate(ctx, identity.ID)
	}
	if err != nil {
		return PixLogReport{}, err
	}

	var st PixLogStats
	status = strings.ToLower(strings.TrimSpace(status))
	filtered := make([]entities.PixLog, 0, len(logs))
	for _, l := range logs {
		st.Total++
		switch l.Status {
		case entities.PixLogStatusPaid:
			st.Paid++
		case entities.PixLogStatusPending:
			st.Pending++
		case entities.PixLogStatusExpired:
			st.Expired++
		}
		if status == "" || status == "todos" || string(l.Status) == status {
			filtered = append(filtered, l)
		}
	}
	return PixLogReport{Logs: filtered, Stats: st}, nil
}

// resolveAPIKey picks the provider key for the caller: the global key for
// the administrator, the associate's own key for a reseller.
func resolveAPIKey(ctx context.Context, identity entities.Identity, configRepo interfaces.IConfigurationRepository, associateRepo interfaces.IAssociateRepository) (string, error) {
	if identity.IsAdmin() {
		cfg, err := configRepo.GetAll(ctx)
		if err != nil {
			return "", err
		}
		return cfg.Get(entities.ConfigAPIKey), nil
	}
	a, err := associateRepo.GetByID(ctx, identity.ID)
	if err != nil {
		return "", err
	}
	if a.ID == "" {
		return "", ErrAssociateNotFound
	}
	return strings.TrimSpace(a.APIKey), nil
}

func formatRowTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
