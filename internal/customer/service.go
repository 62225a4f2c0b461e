// Package customer manages customer accounts: signup, login and profile,
// address and credit card updates.
package customer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/MikeMC777/shop-api/internal/apperr"
	"github.com/MikeMC777/shop-api/internal/audit"
	"github.com/MikeMC777/shop-api/internal/auth"
	"github.com/MikeMC777/shop-api/internal/shipping"
)

const msgBadCredentials = "email or password is invalid"

// TokenIssuer signs access tokens for a customer id.
type TokenIssuer interface {
	Issue(customerID int) (string, time.Time, error)
	TTL() time.Duration
}

// RegionLookup resolves a shipping region by id.
type RegionLookup interface {
	Region(ctx context.Context, id int) (*shipping.Region, error)
}

type Service struct {
	repo    Repository
	hasher  auth.Hasher
	tokens  TokenIssuer
	regions RegionLookup
	audit   audit.Recorder
	log     *zap.Logger

	// decoy is hashed once with the live hasher so unknown emails pay the
	// same bcrypt cost as a wrong password.
	decoyOnce sync.Once
	decoy     string
}

func NewService(repo Repository, hasher auth.Hasher, tokens TokenIssuer, regions RegionLookup, rec audit.Recorder, log *zap.Logger) *Service {
	if rec == nil {
		rec = audit.Nop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, hasher: hasher, tokens: tokens, regions: regions, audit: rec, log: log}
}

func (s *Service) Register(ctx context.Context, in RegisterRequest) (*Session, error) {
	email := normalizeEmail(in.Email)
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, apperr.Conflict("email", "the email already exists")
	} else if !errors.Is(err, ErrNotFound) {
		return nil, apperr.Internal("lookup customer email", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperr.Internal("hash password", err)
	}
	c := &Customer{Name: in.Name, Email: email, PasswordHash: hash}
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, apperr.Conflict("email", "the email already exists")
		}
		return nil, apperr.Internal("create customer", err)
	}
	s.record(ctx, "register", c.CustomerID)
	return s.session(c)
}

// Login fails the same way for an unknown email and a wrong password.
func (s *Service) Login(ctx context.Context, in LoginRequest) (*Session, error) {
	c, err := s.repo.GetByEmail(ctx, normalizeEmail(in.Email))
	if errors.Is(err, ErrNotFound) {
		s.hasher.Compare(s.decoyHash(), in.Password)
		return nil, apperr.Unauthorized(msgBadCredentials)
	}
	if err != nil {
		return nil, apperr.Internal("lookup customer email", err)
	}
	if !s.hasher.Compare(c.PasswordHash, in.Password) {
		return nil, apperr.Unauthorized(msgBadCredentials)
	}
	return s.session(c)
}

func (s *Service) decoyHash() string {
	s.decoyOnce.Do(func() {
		h, err := s.hasher.Hash("decoy-password-never-matches")
		if err != nil {
			s.log.Warn("hash login decoy", zap.Error(err))
			return
		}
		s.decoy = h
	})
	return s.decoy
}

func (s *Service) Profile(ctx context.Context, id int) (*Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("customer not found")
	}
	if err != nil {
		return nil, apperr.Internal("load customer", err)
	}
	return c, nil
}

func (s *Service) UpdateProfile(ctx context.Context, id int, in UpdateRequest) (*Customer, error) {
	c, err := s.Profile(ctx, id)
	if err != nil {
		return nil, err
	}
	email := normalizeEmail(in.Email)
	if email != c.Email {
		other, err := s.repo.GetByEmail(ctx, email)
		switch {
		case err == nil && other.CustomerID != id:
			return nil, apperr.Forbidden("email", "email is already used by another customer")
		case err != nil && !errors.Is(err, ErrNotFound):
			return nil, apperr.Internal("lookup customer email", err)
		}
	}

	c.Name = in.Name
	c.Email = email
	c.DayPhone, c.EvePhone, c.MobPhone = in.DayPhone, in.EvePhone, in.MobPhone
	if in.Password != "" {
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, apperr.Internal("hash password", err)
		}
		c.PasswordHash = hash
	}
	return c, s.save(ctx, c, "update_profile")
}

func (s *Service) UpdateAddress(ctx context.Context, id int, in AddressRequest) (*Customer, error) {
	c, err := s.Profile(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.regions.Region(ctx, in.ShippingRegionID); err != nil {
		if errors.Is(err, shipping.ErrNotFound) {
			return nil, apperr.Validation("shipping_region_id", "unknown shipping region")
		}
		return nil, apperr.Internal("load shipping region", err)
	}
	c.Address1, c.Address2 = in.Address1, in.Address2
	c.City, c.Region = in.City, in.Region
	c.PostalCode, c.Country = in.PostalCode, in.Country
	c.ShippingRegionID = in.ShippingRegionID
	return c, s.save(ctx, c, "update_address")
}

// UpdateCreditCard stores only the masked card number.
func (s *Service) UpdateCreditCard(ctx context.Context, id int, in CreditCardRequest) (*Customer, error) {
	if !ValidCard(in.CreditCard) {
		return nil, apperr.Validation("credit_card", "invalid credit card number")
	}
	c, err := s.Profile(ctx, id)
	if err != nil {
		return nil, err
	}
	c.CreditCard = MaskCard(in.CreditCard)
	return c, s.save(ctx, c, "update_credit_card")
}

func (s *Service) save(ctx context.Context, c *Customer, action string) error {
	if err := s.repo.Update(ctx, c); err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			return apperr.Forbidden("email", "email is already used by another customer")
		case errors.Is(err, ErrNotFound):
			return apperr.NotFound("customer not found")
		}
		return apperr.Internal("update customer", err)
	}
	s.record(ctx, action, c.CustomerID)
	return nil
}

func (s *Service) session(c *Customer) (*Session, error) {
	tok, _, err := s.tokens.Issue(c.CustomerID)
	if err != nil {
		return nil, apperr.Internal("issue token", err)
	}
	return &Session{
		Customer:    c,
		AccessToken: "Bearer " + tok,
		ExpiresIn:   formatTTL(s.tokens.TTL()),
	}, nil
}

func (s *Service) record(ctx context.Context, action string, id int) {
	err := s.audit.Record(ctx, audit.Entry{
		Service:  "customer",
		Action:   action,
		EntityID: strconv.Itoa(id),
		ActorID:  id,
	})
	if err != nil {
		s.log.Warn("audit record failed", zap.String("action", action), zap.Int("customer_id", id), zap.Error(err))
	}
}

// formatTTL renders whole hours as "24h" rather than "24h0m0s".
func formatTTL(d time.Duration) string {
	if d > 0 && d%time.Hour == 0 {
		return fmt.Sprintf("%dh", d/time.Hour)
	}
	return d.String()
}
