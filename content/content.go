package content

import (
	"context"
	"log"

	"legacy/models"
	"legacy/store"
)

// Singleton document addresses in the store.
const (
	aboutCollection    = "content"
	aboutDoc           = "about"
	settingsCollection = "settings"
	rulesDoc           = "companyRules"
	socialDoc          = "socialMedia"
)

// Service reads and saves the page-content singletons. Every Get degrades to
// a hardcoded default on both "document missing" and "store unreachable";
// callers cannot tell the two apart and never need to.
type Service struct {
	Store store.Gateway
}

func NewService(gw store.Gateway) *Service {
	return &Service{Store: gw}
}

func (s *Service) GetAbout(ctx context.Context) models.AboutContent {
	var about models.AboutContent
	if err := s.Store.ReadOne(ctx, aboutCollection, aboutDoc, &about); err != nil {
		if err != store.ErrNotFound {
			log.Println("content: get about:", err)
		}
		return DefaultAbout()
	}
	// A partially filled document keeps the default values list.
	if len(about.Values) == 0 {
		about.Values = DefaultAbout().Values
	}
	return about
}

func (s *Service) SaveAbout(ctx context.Context, about models.AboutContent) error {
	return s.Store.Upsert(ctx, aboutCollection, aboutDoc, about)
}

func (s *Service) GetRules(ctx context.Context) models.CompanyRules {
	var rules models.CompanyRules
	if err := s.Store.ReadOne(ctx, settingsCollection, rulesDoc, &rules); err != nil {
		if err != store.ErrNotFound {
			log.Println("content: get rules:", err)
		}
		return DefaultRules()
	}
	if len(rules.Rules) == 0 {
		return DefaultRules()
	}
	return rules
}

// SaveRules replaces the whole list; there is no per-rule versioning.
func (s *Service) SaveRules(ctx context.Context, rules models.CompanyRules) error {
	return s.Store.Upsert(ctx, settingsCollection, rulesDoc, rules)
}

// GetSocial falls back per field: a stored document missing one URL still
// yields the default for that network.
func (s *Service) GetSocial(ctx context.Context) models.SocialMediaURLs {
	var social models.SocialMediaURLs
	if err := s.Store.ReadOne(ctx, settingsCollection, socialDoc, &social); err != nil {
		if err != store.ErrNotFound {
			log.Println("content: get social urls:", err)
		}
		return DefaultSocial()
	}
	def := DefaultSocial()
	if social.Instagram == "" {
		social.Instagram = def.Instagram
	}
	if social.TikTok == "" {
		social.TikTok = def.TikTok
	}
	if social.YouTube == "" {
		social.YouTube = def.YouTube
	}
	return social
}

func (s *Service) SaveSocial(ctx context.Context, social models.SocialMediaURLs) error {
	return s.Store.Upsert(ctx, settingsCollection, socialDoc, social)
}
