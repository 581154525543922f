package templates

import (
	"time"

	"github.com/oksasatya/go-newsroom/config"
	"github.com/oksasatya/go-newsroom/internal/domain/entity"
)

type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

// WithNews links the email to a news item under PublicURL.
func WithNews(n *entity.NewsItem) Option {
	return func(d *EmailData) {
		d.NewsID = n.ID
		d.NewsTitle = n.Title
		d.NewsURL = d.PublicURL + "/news/" + n.ID
	}
}

func WithComment(c entity.Comment) Option {
	return func(d *EmailData) {
		d.CommenterName = c.UserName
		d.CommentBody = c.Body
	}
}

// NewBaseEmailData fills the fields shared by all emails, then applies opts in order.
func NewBaseEmailData(cfg *config.Config, typ, name, recipient string, opts ...Option) EmailData {
	d := EmailData{
		Name:           name,
		RecipientEmail: recipient,
		Type:           typ,
		AppName:        cfg.AppName,
		PublicURL:      cfg.PublicURL,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}
