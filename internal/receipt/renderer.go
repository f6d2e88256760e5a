package receipt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shoplite/pos-backend/internal/checkout/domain"
)

// FileRenderer writes one plain-text receipt document per transaction into
// a configured directory. It implements checkout's ReceiptRenderer.
type FileRenderer struct {
	dir string
}

// NewFileRenderer creates a renderer writing into dir, creating it if needed
func NewFileRenderer(dir string) (*FileRenderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create receipt directory: %w", err)
	}
	return &FileRenderer{dir: dir}, nil
}

// Render writes the receipt and returns the document path. The file is named
// by customer and bill timestamp.
func (r *FileRenderer) Render(ctx context.Context, tx *domain.Transaction) (string, error) {
	name := fmt.Sprintf("%s_%s.txt",
		sanitize(tx.CustomerName),
		tx.BilledAt.Format("20060102150405"),
	)
	path := filepath.Join(r.dir, name)

	var b strings.Builder
	b.WriteString("INVENTORY BILL\n")
	fmt.Fprintf(&b, "Bill Date: %s\n", tx.BilledAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Customer: %s\n", tx.CustomerName)
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, ln := range tx.Lines {
		fmt.Fprintf(&b, "%d x %s @ Rs. %s = Rs. %s\n",
			ln.Quantity, ln.ItemName, ln.UnitPrice.StringFixed(2), ln.Subtotal.StringFixed(2))
	}
	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&b, "Total Price: Rs. %s\n", tx.TotalPrice.StringFixed(2))
	fmt.Fprintf(&b, "GST (15%%): Rs. %s\n", tx.GST.StringFixed(2))
	fmt.Fprintf(&b, "Final Price: Rs. %s\n", tx.FinalPrice.StringFixed(2))

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write receipt: %w", err)
	}
	return path, nil
}

// sanitize keeps receipt file names portable
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
