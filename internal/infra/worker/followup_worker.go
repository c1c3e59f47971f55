package worker

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/pipetrack/pipetrack/internal/entity"
	"github.com/pipetrack/pipetrack/internal/followup"
	"github.com/pipetrack/pipetrack/internal/infra/queue"
	"github.com/pipetrack/pipetrack/internal/store"
)

// FollowUpWorker periodically re-derives follow-up notifications from the
// store and publishes the overdue/today ones to the queue. It also hooks
// the store's subscribe contract so a refresh or reconciliation triggers a
// scan without waiting for the next tick. Events are derived fresh every
// scan — nothing is cached across a day boundary.
type FollowUpWorker struct {
	store        *store.Store
	producer     queue.ProducerInterface
	tickInterval time.Duration

	mu        sync.Mutex
	users     map[string]entity.User // keyed by id and by name
	published map[string]bool        // leadID|date|day already sent
	pubDay    string
}

func NewFollowUpWorker(s *store.Store, producer queue.ProducerInterface) *FollowUpWorker {
	w := &FollowUpWorker{
		store:        s,
		producer:     producer,
		tickInterval: 15 * time.Minute,
		users:        make(map[string]entity.User),
		published:    make(map[string]bool),
	}
	s.Subscribe(func() { w.scan(context.Background()) })
	return w
}

// SetUsers refreshes the BDA directory used to resolve alert recipients.
func (w *FollowUpWorker) SetUsers(users []entity.User) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.users = make(map[string]entity.User, len(users)*2)
	for _, u := range users {
		if u.ID != "" {
			w.users[u.ID] = u
		}
		if u.Name != "" {
			w.users[u.Name] = u
		}
	}
}

func (w *FollowUpWorker) Start(ctx context.Context) {
	log.Printf("follow-up worker started (tick %s)", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.scan(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("follow-up worker stopped")
			return
		case <-ticker.C:
			w.scan(ctx)
		}
	}
}

func (w *FollowUpWorker) scan(ctx context.Context) {
	leads := w.store.All()
	now := time.Now()
	events := followup.Notifications(leads, now)
	if len(events) == 0 {
		return
	}

	byID := make(map[string]entity.Lead, len(leads))
	for _, lead := range leads {
		byID[lead.ID] = lead
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	day := now.Format("2006-01-02")
	if day != w.pubDay {
		// New day, buckets shift; everything is eligible again.
		w.published = make(map[string]bool)
		w.pubDay = day
	}

	sent := 0
	for _, ev := range events {
		key := ev.LeadID + "|" + ev.Date + "|" + day
		if w.published[key] {
			continue
		}

		lead := byID[ev.LeadID]
		payload := queue.FollowUpPayload{
			LeadID:   ev.LeadID,
			LeadName: ev.Title,
			Date:     ev.Date,
			Bucket:   ev.Bucket,
			BdaName:  lead.AssignedToName,
		}
		if u, ok := w.resolveUser(lead); ok {
			payload.BdaName = u.Name
			payload.BdaEmail = u.Email
		}

		if err := w.producer.PublishFollowUp(ctx, payload); err != nil {
			log.Printf("follow-up worker: publish for lead %s failed: %v", ev.LeadID, err)
			continue
		}
		w.published[key] = true
		sent++
	}

	if sent > 0 {
		log.Printf("follow-up worker: %d alert(s) published", sent)
	}
}

// resolveUser must run with w.mu held.
func (w *FollowUpWorker) resolveUser(lead entity.Lead) (entity.User, bool) {
	if u, ok := w.users[lead.AssignedToID]; ok && lead.AssignedToID != "" {
		return u, true
	}
	if u, ok := w.users[lead.AssignedToName]; ok && lead.AssignedToName != "" {
		return u, true
	}
	return entity.User{}, false
}
