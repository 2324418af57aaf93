package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jmartel/portfolio-api/internal/apperror"
)

type fakeSender struct {
	sent    int
	lastSub string
	err     error
}

func (f *fakeSender) SendContact(name, email, subject, message string) error {
	if f.err != nil {
		return f.err
	}
	f.sent++
	f.lastSub = subject
	return nil
}

func TestContactSubmit_Success(t *testing.T) {
	sender := &fakeSender{}
	svc := NewContactService(sender, newTestLogger())

	err := svc.Submit(context.Background(), "Jane", "jane@example.com", "Hi", "Nice site")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if sender.sent != 1 {
		t.Errorf("sent = %d, want 1", sender.sent)
	}
	if sender.lastSub != "Hi" {
		t.Errorf("subject = %q, want %q", sender.lastSub, "Hi")
	}
}

func TestContactSubmit_BlankFieldRejected(t *testing.T) {
	sender := &fakeSender{}
	svc := NewContactService(sender, newTestLogger())

	cases := [][4]string{
		{"", "jane@example.com", "Hi", "msg"},
		{"Jane", "   ", "Hi", "msg"},
		{"Jane", "jane@example.com", "", "msg"},
		{"Jane", "jane@example.com", "Hi", "  "},
	}

	for _, c := range cases {
		err := svc.Submit(context.Background(), c[0], c[1], c[2], c[3])
		if !errors.Is(err, apperror.ErrValidation) {
			t.Errorf("Submit(%q,%q,%q,%q) error = %v, want ErrValidation", c[0], c[1], c[2], c[3], err)
		}
	}
	if sender.sent != 0 {
		t.Errorf("sent = %d, want 0 for invalid submissions", sender.sent)
	}
}

func TestContactSubmit_DeliveryFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp: connection refused")}
	svc := NewContactService(sender, newTestLogger())

	err := svc.Submit(context.Background(), "Jane", "jane@example.com", "Hi", "msg")
	if !errors.Is(err, apperror.ErrDelivery) {
		t.Errorf("error = %v, want ErrDelivery", err)
	}
}
