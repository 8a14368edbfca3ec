package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"backend/entity"
	"backend/repository"
	"backend/ws"
)

var ErrUnknownSettingsKind = errors.New("unknown settings kind")

// SettingsService เก็บ settings เป็น tagged variant ต่อ kind
// payload ถูก bind เข้า struct ของ kind นั้นก่อนเขียนเสมอ ไม่รับ blob หลวม ๆ
type SettingsService struct {
	Repo *repository.SettingsRepository
	Feed *ws.FeedHub
}

func NewSettingsService(repo *repository.SettingsRepository, feed *ws.FeedHub) *SettingsService {
	return &SettingsService{Repo: repo, Feed: feed}
}

func (s *SettingsService) Get(tenantID, kind string) (any, error) {
	row, err := s.Repo.Get(tenantID, kind)
	if err != nil {
		return nil, err
	}
	out, err := decodeSettings(kind, []byte(row.Data))
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SettingsService) SavePrinting(tenantID string, in *entity.PrintingSettings) error {
	if in.Enabled && (in.APIKey == "" || in.PrinterID == "") {
		return fmt.Errorf("printing enabled requires apiKey and printerId")
	}
	if in.Copies == 0 {
		in.Copies = 1
	}
	return s.save(tenantID, entity.SettingsKindPrinting, in)
}

func (s *SettingsService) SaveNotifications(tenantID string, in *entity.NotificationSettings) error {
	if in.ToastLimit == 0 {
		in.ToastLimit = 1
	}
	if in.MobileSeconds == 0 {
		in.MobileSeconds = 3
	}
	if in.DesktopSeconds == 0 {
		in.DesktopSeconds = 5
	}
	return s.save(tenantID, entity.SettingsKindNotifications, in)
}

func (s *SettingsService) SaveAppearance(tenantID string, in *entity.AppearanceSettings) error {
	if in.Theme == "" {
		in.Theme = "system"
	}
	return s.save(tenantID, entity.SettingsKindAppearance, in)
}

func (s *SettingsService) save(tenantID, kind string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := s.Repo.Upsert(tenantID, kind, string(raw)); err != nil {
		return err
	}
	if s.Feed != nil {
		s.Feed.Publish("settings", ws.EventUpdate, map[string]any{"kind": kind, "data": v})
	}
	return nil
}

func decodeSettings(kind string, raw []byte) (any, error) {
	switch kind {
	case entity.SettingsKindPrinting:
		var v entity.PrintingSettings
		return &v, json.Unmarshal(raw, &v)
	case entity.SettingsKindNotifications:
		var v entity.NotificationSettings
		return &v, json.Unmarshal(raw, &v)
	case entity.SettingsKindAppearance:
		var v entity.AppearanceSettings
		return &v, json.Unmarshal(raw, &v)
	default:
		return nil, ErrUnknownSettingsKind
	}
}
