package postgres

import (
	"context"
	"fmt"

	"wallet-settlement/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// InvoiceRepo implements ports.InvoiceRepository.
type InvoiceRepo struct{}

// NewInvoiceRepo creates a new InvoiceRepo.
func NewInvoiceRepo() *InvoiceRepo {
	return &InvoiceRepo{}
}

// Create writes the invoice for a completed cart. A cart that already has
// an invoice keeps it.
func (r *InvoiceRepo) Create(ctx context.Context, tx pgx.Tx, inv *domain.Invoice) error {
	query := `INSERT INTO invoices (id, cart_id, amount, created_at)
		VALUES ($1, $2, $3::numeric, $4)
		ON CONFLICT (cart_id) DO NOTHING`

	if _, err := tx.Exec(ctx, query, inv.ID, inv.CartID, inv.Amount.String(), inv.CreatedAt); err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}
