package handlers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-newsroom/config"
	"github.com/oksasatya/go-newsroom/internal/domain/entity"
	"github.com/oksasatya/go-newsroom/pkg/helpers"
	"github.com/oksasatya/go-newsroom/pkg/mailer"
	tpl "github.com/oksasatya/go-newsroom/pkg/mailer/templates"
)

const publishTimeout = 3 * time.Second

// Notifier enqueues emails for the worker. A nil Notifier or Publisher sends nothing.
// Failures are logged and never reach the client.
type Notifier struct {
	Pub    mailer.Publisher
	Cfg    *config.Config
	Logger logrus.FieldLogger
}

func NewNotifier(pub mailer.Publisher, cfg *config.Config, logger logrus.FieldLogger) *Notifier {
	return &Notifier{Pub: pub, Cfg: cfg, Logger: logger}
}

func (n *Notifier) Welcome(ctx context.Context, u *entity.User) {
	if n == nil || n.Pub == nil {
		return
	}
	data := tpl.NewBaseEmailData(n.Cfg, tpl.Welcome, u.Name, u.Email, tpl.WithTime(u.CreatedAt))
	n.enqueue(ctx, mailer.EmailJob{To: u.Email, Template: tpl.Welcome, Data: tpl.ToMap(data)}, logrus.Fields{"user_id": u.ID})
}

// NewComment tells the author of item about comment. Authors commenting on their own
// item are not notified.
func (n *Notifier) NewComment(ctx context.Context, author *entity.User, item *entity.NewsItem, comment entity.Comment) {
	if n == nil || n.Pub == nil || author.ID == comment.UserID {
		return
	}
	data := tpl.NewBaseEmailData(n.Cfg, tpl.NewComment, author.Name, author.Email,
		tpl.WithNews(item),
		tpl.WithComment(comment),
		tpl.WithTime(comment.CreatedAt),
	)
	n.enqueue(ctx, mailer.EmailJob{To: author.Email, Template: tpl.NewComment, Data: tpl.ToMap(data)}, logrus.Fields{"news_id": item.ID})
}

func (n *Notifier) enqueue(ctx context.Context, job mailer.EmailJob, fields logrus.Fields) {
	c, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := n.Pub.PublishJSON(c, job); err != nil {
		fields["template"] = job.Template
		helpers.LogWarn(n.Logger, "enqueue email failed", err, fields)
	}
}
