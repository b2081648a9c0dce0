package domain

// Product is a catalog entry sold for a fixed price. Name is the unique key.
type Product struct {
	Emoji string `json:"emoji"`
	Name  string `json:"name"`
	Rank  string `json:"rank"`
	Price int    `json:"price"`
	Image string `json:"image"`
}

// UserAccount holds the virtual currency balance for a single user.
// Balance is never observably negative after a completed operation.
type UserAccount struct {
	Balance int `json:"balance"`
}

const (
	// PendingOrderStatus order created, waiting for an admin decision;
	PendingOrderStatus string = "PENDING"
	// ApprovedOrderStatus order approved, rank role granted to the buyer;
	ApprovedOrderStatus string = "APPROVED"
	// DeniedOrderStatus order denied, fee refunded;
	DeniedOrderStatus string = "DENIED"
)

// Order is a custom rank request. Status moves from PENDING to exactly one of
// APPROVED or DENIED; orders are never deleted or reopened.
type Order struct {
	OrderID  int    `json:"order_id"`
	UserID   string `json:"user_id"`
	RankName string `json:"rank_name"`
	Color    string `json:"color"`
	Price    int    `json:"price"`
	Status   string `json:"status"`
}

// Finalized reports whether the order reached a terminal status.
func (o *Order) Finalized() bool {
	return o.Status != PendingOrderStatus
}

// TopupRecord is an append-only audit entry for a verified topup.
type TopupRecord struct {
	UserID string `json:"user_id"`
	Amount int    `json:"amount"`
	Link   string `json:"link"`
}

// Ledger is the aggregate root of all persisted shop state. Field names match
// the snapshot layout of prior deployments and must not change.
type Ledger struct {
	Products  []Product               `json:"products"`
	Orders    []*Order                `json:"orders"`
	Users     map[string]*UserAccount `json:"users"`
	TopupLogs []TopupRecord           `json:"topup_logs"`
}

// NewLedger returns an empty ledger with all collections allocated so a fresh
// snapshot serializes to the expected shape.
func NewLedger() *Ledger {
	return &Ledger{
		Products:  []Product{},
		Orders:    []*Order{},
		Users:     map[string]*UserAccount{},
		TopupLogs: []TopupRecord{},
	}
}

// Account returns the account for userID, creating it lazily.
func (l *Ledger) Account(userID string) *UserAccount {
	acc, ok := l.Users[userID]
	if !ok {
		acc = &UserAccount{}
		l.Users[userID] = acc
	}
	return acc
}

// FindOrder returns the order with the given id or nil. Order ids are assigned
// sequentially from 1, so the id doubles as a slice index.
func (l *Ledger) FindOrder(orderID int) *Order {
	if orderID < 1 || orderID > len(l.Orders) {
		return nil
	}
	return l.Orders[orderID-1]
}

// FindProduct returns the product with the given name or nil.
func (l *Ledger) FindProduct(name string) *Product {
	for i := range l.Products {
		if l.Products[i].Name == name {
			return &l.Products[i]
		}
	}
	return nil
}
