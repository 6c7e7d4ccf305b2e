package venueapi

import "time"

const (
	OrderStatusPending   = "PENDING"
	OrderStatusPaid      = "PAID"
	OrderStatusCancelled = "CANCELLED"
)

// PaymentStatusApproved is the only brick-payment status that counts as a
// successful direct payment.
const PaymentStatusApproved = "approved"

type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	Date        time.Time  `json:"date"`
	Capacity    *int       `json:"capacity"`
	Promo       *bool      `json:"promo"`
	SoldOut     *bool      `json:"soldOut"`
	Price       float64    `json:"price"`
	Sold        int        `json:"sold"`
	ImageURL    *string    `json:"imageUrl"`
	CategoryID  *string    `json:"categoryId"`
	OrganizerID *string    `json:"organizerId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Ticket struct {
	ID            int64     `json:"id"`
	EventID       string    `json:"eventId"`
	BuyerName     string    `json:"buyerName"`
	BuyerLastName string    `json:"buyerLastName"`
	BuyerEmail    string    `json:"buyerEmail"`
	BuyerPhone    *string   `json:"buyerPhone"`
	BuyerDNI      string    `json:"buyerDni"`
	Status        string    `json:"status"`
	CheckedIn     bool      `json:"checkedIn"`
	PurchaseAt    time.Time `json:"purchaseAt"`
	Price         float64   `json:"price"`
	CouponID      *string   `json:"couponId"`
	OrderID       *string   `json:"orderId"`
}

type Payment struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Order is the backend-owned aggregate grouping one or more tickets with a
// single total price and lifecycle status. The "Payment" key matches the
// venue API's serialization.
type Order struct {
	ID         string    `json:"id"`
	UserID     *string   `json:"userId"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status"`
	Tickets    []Ticket  `json:"tickets,omitempty"`
	Payments   []Payment `json:"Payment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Coupon struct {
	ID           string     `json:"id"`
	Code         string     `json:"code"`
	Discount     float64    `json:"discount"`
	IsPercentage bool       `json:"isPercentage"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	MaxUses      *int       `json:"maxUses,omitempty"`
	UsedCount    int        `json:"usedCount"`
	EventID      string     `json:"eventId"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type PaymentPreference struct {
	PreferenceID string `json:"preferenceId"`
	InitPoint    string `json:"initPoint"`
}

type BrickPaymentResult struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	StatusDetail string `json:"statusDetail"`
	OrderID      string `json:"orderId"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Artist struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Genre       string                 `json:"genre,omitempty"`
	Photo       string                 `json:"photo,omitempty"`
	Biography   string                 `json:"biography,omitempty"`
	Contact     string                 `json:"contact,omitempty"`
	SocialMedia map[string]interface{} `json:"socialMedia,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"rol"`
	IsActive bool   `json:"isActive"`
}

type UserStats struct {
	User
	TicketsBought int     `json:"ticketsBought"`
	TotalSpent    float64 `json:"totalSpent"`
	LastPurchase  *string `json:"lastPurchase,omitempty"`
}

type DashboardStats struct {
	ActiveEvents int     `json:"activeEvents"`
	TotalTickets int     `json:"totalTickets"`
	TotalUsers   int     `json:"totalUsers"`
	TotalRevenue float64 `json:"totalRevenue"`
}
