package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/honeynil/DepositWithdrawService/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	customerTmpl = template.Must(template.New("customer").Parse(`
<h3>Dear {{.Name}},</h3>
<p>We have received your <strong>{{.Amount}} ৳</strong> {{.Kind}} request.</p>
<p><strong>{{.RefLabel}}:</strong> {{.Ref}}</p>
<p><strong>Status:</strong> {{.Status}}</p>
<p><strong>Requested at:</strong> {{.Time}}</p>
<br>
<p>Thank you for your patience.</p>
<p><strong>Deposit &amp; Withdraw Service</strong></p>
`))

	adminTmpl = template.Must(template.New("admin").Parse(`
<h3>Dear Admin,</h3>
<p>A customer has submitted a new {{.Kind}} request.</p>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Amount:</strong> {{.Amount}} ৳</p>
<p><strong>{{.RefLabel}}:</strong> {{.Ref}}</p>
<p><strong>Channel:</strong> {{.Channel}}</p>
{{- if .Wallet}}
<p><strong>Wallet number:</strong> {{.Wallet}}</p>
{{- end}}
<p><strong>Status:</strong> {{.Status}}</p>
<p><strong>Requested at:</strong> {{.Time}}</p>
`))

	digestTmpl = template.Must(template.New("digest").Parse(`
<h3>Dear Admin,</h3>
<p>{{len .Rows}} request(s) are still waiting for your review.</p>
<table>
<tr><th>Kind</th><th>Customer</th><th>Amount</th><th>Reference</th><th>Requested at</th></tr>
{{- range .Rows}}
<tr><td>{{.Kind}}</td><td>{{.Email}}</td><td>{{.Amount}} ৳</td><td>{{.Ref}}</td><td>{{.Time}}</td></tr>
{{- end}}
</table>
`))
)

type mailView struct {
	Kind     models.Kind
	Name     string
	Email    string
	Amount   string
	RefLabel string
	Ref      string
	Channel  string
	Wallet   string
	Status   models.StatusType
	Time     string
}

// Renderer turns transaction requests into localized HTML mails.
type Renderer struct {
	printer *message.Printer
	point   string
	loc     *time.Location
}

func NewRenderer(locale string, loc *time.Location) *Renderer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	return &Renderer{printer: p, point: decimalPoint(p), loc: loc}
}

// formatAmount prints whole units and cents as integers so the decimal never passes through float64.
func (r *Renderer) formatAmount(amount decimal.Decimal) string {
	fixed := amount.Round(2)
	whole := fixed.Truncate(0)
	cents := fixed.Sub(whole).Shift(2).Abs().IntPart()
	sign := ""
	if fixed.IsNegative() && whole.IsZero() {
		sign = "-"
	}
	return sign + r.printer.Sprint(number.Decimal(whole.IntPart())) + r.point +
		r.printer.Sprint(number.Decimal(cents, number.MinIntegerDigits(2), number.NoSeparator()))
}

// decimalPoint reads the locale's decimal separator off a one-digit fraction.
func decimalPoint(p *message.Printer) string {
	digits := []rune(p.Sprint(number.Decimal(1.5, number.Scale(1))))
	if len(digits) < 3 {
		return "."
	}
	return string(digits[1 : len(digits)-1])
}

func (r *Renderer) Created(req models.TransactionRequest) (customer, admin models.MailMessage, err error) {
	view := r.view(req)

	customer.Subject = fmt.Sprintf("Your %s request has been received", req.Kind)
	if customer.Body, err = execute(customerTmpl, view); err != nil {
		return customer, admin, err
	}

	admin.Subject = fmt.Sprintf("New %s request received", req.Kind)
	if admin.Body, err = execute(adminTmpl, view); err != nil {
		return customer, admin, err
	}
	return customer, admin, nil
}

func (r *Renderer) Digest(reqs []models.TransactionRequest) (models.MailMessage, error) {
	rows := make([]mailView, 0, len(reqs))
	for _, req := range reqs {
		rows = append(rows, r.view(req))
	}
	body, err := execute(digestTmpl, struct{ Rows []mailView }{rows})
	if err != nil {
		return models.MailMessage{}, err
	}
	return models.MailMessage{
		Subject: fmt.Sprintf("%d pending request(s) awaiting review", len(reqs)),
		Body:    body,
	}, nil
}

func (r *Renderer) view(req models.TransactionRequest) mailView {
	return mailView{
		Kind:     req.Kind,
		Name:     req.Customer.Name,
		Email:    req.Customer.Email,
		Amount:   r.formatAmount(req.Amount),
		RefLabel: req.Kind.ExternalRefLabel(),
		Ref:      req.ExternalRef,
		Channel:  req.ChannelName,
		Wallet:   req.WalletNumber,
		Status:   req.Status,
		Time:     models.FormatDisplayTime(req.CreatedAt, r.loc),
	}
}

func execute(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s mail: %w", t.Name(), err)
	}
	return strings.TrimSpace(buf.String()), nil
}
