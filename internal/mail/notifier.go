package mail

import (
	"context"
	"html/template"
	"strings"
	"time"

	"github.com/go-faster/errors"

	"github.com/monish-s03/grokart-api/internal/domain/order"
)

var (
	confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<h3>Thank you for your order!</h3>
<p><b>Product:</b> {{.ProductName}}</p>
<p><b>Price:</b> {{.Price}}</p>
<p><b>Quantity:</b> {{.Quantity}}</p>
<p><b>Order ID:</b> {{.ID}}</p>
`))

	cancellationTmpl = template.Must(template.New("cancellation").Parse(`
<h3>Your order has been cancelled</h3>
<p><b>Product:</b> {{.ProductName}}</p>
<p><b>Price:</b> {{.Price}}</p>
<p><b>Quantity:</b> {{.Quantity}}</p>
<p><b>Order ID:</b> {{.ID}}</p>
<p><b>Cancelled At:</b> {{.CancelledAt}}</p>
`))

	sellerApplicationTmpl = template.Must(template.New("seller").Parse(`
<h2>New Seller Application</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Shop Name:</strong> {{.ShopName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Description:</strong> {{.Description}}</p>
`))

	testTmpl = template.Must(template.New("test").Parse(`<p>{{.}}</p>`))
)

// SellerApplication carries the fields of a seller onboarding request.
type SellerApplication struct {
	Name        string
	ShopName    string
	Email       string
	Phone       string
	Description string
}

// Notifier renders the fixed message templates and hands them to a Sender.
// It implements order.Notifier for the order lifecycle events and carries the
// seller-application and test variants used by the public endpoints.
type Notifier struct {
	sender      Sender
	sellerInbox string
}

var _ order.Notifier = (*Notifier)(nil)

// NewNotifier creates a Notifier. Seller applications are delivered to
// sellerInbox, the operator's address.
func NewNotifier(sender Sender, sellerInbox string) *Notifier {
	return &Notifier{sender: sender, sellerInbox: sellerInbox}
}

type orderView struct {
	ID          string
	ProductName string
	Price       string
	Quantity    int
	CancelledAt string
}

func makeOrderView(o order.Order, cancelledAt time.Time) orderView {
	v := orderView{
		ID:          o.ID,
		ProductName: o.ProductName,
		Price:       o.Price.StringFixed(2),
		Quantity:    o.Quantity,
	}
	if v.Quantity <= 0 {
		v.Quantity = 1
	}
	if !cancelledAt.IsZero() {
		v.CancelledAt = cancelledAt.Format(time.RFC1123)
	}
	return v
}

// OrderConfirmed sends the order-confirmation message to the purchaser.
func (n *Notifier) OrderConfirmed(ctx context.Context, o order.Order) error {
	body, err := render(confirmationTmpl, makeOrderView(o, time.Time{}))
	if err != nil {
		return err
	}
	return n.sender.Send(ctx, Message{
		To:      o.UserEmail,
		Subject: "Your Order is Confirmed",
		HTML:    body,
	})
}

// OrderCancelled sends the cancellation message, including when the order was
// cancelled, to the purchaser.
func (n *Notifier) OrderCancelled(ctx context.Context, o order.Order, cancelledAt time.Time) error {
	body, err := render(cancellationTmpl, makeOrderView(o, cancelledAt))
	if err != nil {
		return err
	}
	return n.sender.Send(ctx, Message{
		To:      o.UserEmail,
		Subject: "Your Order Has Been Cancelled",
		HTML:    body,
	})
}

// SellerApplication forwards an application to the operator inbox.
func (n *Notifier) SellerApplication(ctx context.Context, app SellerApplication) error {
	body, err := render(sellerApplicationTmpl, app)
	if err != nil {
		return err
	}
	return n.sender.Send(ctx, Message{
		To:      n.sellerInbox,
		Subject: "New Seller Application",
		HTML:    body,
	})
}

// TestMessage sends a caller-supplied subject and plain-text body to an
// arbitrary recipient. The body is HTML-escaped before wrapping.
func (n *Notifier) TestMessage(ctx context.Context, to, subject, body string) error {
	html, err := render(testTmpl, body)
	if err != nil {
		return err
	}
	return n.sender.Send(ctx, Message{To: to, Subject: subject, HTML: html})
}

func render(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", errors.Wrapf(err, "render %s", tmpl.Name())
	}
	return sb.String(), nil
}
