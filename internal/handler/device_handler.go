package handler

import (
	"fmt"
	"strings"
	"time"

	"erp-kozo-backend/internal/model"
	"erp-kozo-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// DeviceHandler menerima event dari tiga jenis mesin absensi. Kontrak ke
// hardware: endpoint webhook SELALU membalas "OK" (HTTP 200) apapun hasil
// internalnya, karena mesin akan retry terus kalau dijawab error.
type DeviceHandler struct {
	attendanceUC *usecase.AttendanceUsecase
}

func NewDeviceHandler(attendanceUC *usecase.AttendanceUsecase) *DeviceHandler {
	return &DeviceHandler{attendanceUC: attendanceUC}
}

type PushEventRequest struct {
	DeviceID  string `json:"device_id"`
	UserID    string `json:"user_id"`
	Timestamp string `json:"timestamp"` // ISO-8601
	Event     string `json:"event"`     // check_in / check_out
}

// PushEvent: mesin dengan push SDK, event type eksplisit di payload.
func (h *DeviceHandler) PushEvent(c *fiber.Ctx) error {
	var req PushEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Payload tidak valid"})
	}
	if req.UserID == "" || req.Timestamp == "" || req.Event == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Field user_id, timestamp dan event wajib diisi"})
	}
	if req.Event != string(usecase.EventCheckIn) && req.Event != string(usecase.EventCheckOut) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Event harus check_in atau check_out"})
	}

	ts, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Format timestamp tidak valid"})
	}

	_, err = h.attendanceUC.ProcessEvent(usecase.AttendanceEvent{
		BadgeID:   req.UserID,
		Timestamp: ts,
		Type:      usecase.EventType(req.Event),
		Method:    model.MethodFingerprint,
		DeviceSN:  req.DeviceID,
	})
	if err != nil {
		// NIK tak dikenal / event dobel bukan salah mesin; tetap sukses
		// supaya mesin tidak retry.
		fmt.Println("Push event diabaikan:", err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Event diterima"})
}

type vendorWebhookRequest struct {
	Biohook string `json:"biohook"`
	Biopush struct {
		Device string `json:"device"`
	} `json:"biopush"`
	Biodata struct {
		UserID  string `json:"user_id"`
		TranDt  string `json:"tran_dt"` // "YYYY-MM-DD HH:MM:SS" waktu lokal WIB
		Stateid string `json:"stateid"` // "1" = check_out, selain itu check_in
	} `json:"biodata"`
}

// VendorWebhook: webhook vendor kedua. Subtipe selain "clockreco"
// (misalnya event enroll) cukup di-ack tanpa diproses.
func (h *DeviceHandler) VendorWebhook(c *fiber.Ctx) error {
	var req vendorWebhookRequest
	if err := c.BodyParser(&req); err != nil {
		return c.SendString("OK")
	}
	if req.Biohook != "clockreco" {
		return c.SendString("OK")
	}

	ts, err := time.ParseInLocation("2006-01-02 15:04:05", req.Biodata.TranDt, usecase.WIB)
	if err != nil {
		fmt.Println("Webhook vendor: tran_dt tidak valid:", req.Biodata.TranDt)
		return c.SendString("OK")
	}

	eventType := usecase.EventCheckIn
	if req.Biodata.Stateid == "1" {
		eventType = usecase.EventCheckOut
	}

	if _, err := h.attendanceUC.ProcessEvent(usecase.AttendanceEvent{
		BadgeID:   req.Biodata.UserID,
		Timestamp: ts,
		Type:      eventType,
		Method:    model.MethodFingerprint,
		DeviceSN:  req.Biopush.Device,
	}); err != nil {
		fmt.Println("Webhook vendor diabaikan:", err)
	}

	return c.SendString("OK")
}

// BulkAttlog: protokol bulk ala ZKTeco. Body berisi satu record per baris,
// kolom dipisah tab: badgeId, datetime, statusCode, verifyMode, ...
// (hanya 4 kolom pertama yang dipakai). Tiap baris diproses independen;
// baris rusak tidak menggagalkan baris lain.
func (h *DeviceHandler) BulkAttlog(c *fiber.Ctx) error {
	if c.Query("table") != "ATTLOG" {
		return c.SendString("OK")
	}
	sn := c.Query("SN")

	for _, line := range strings.Split(string(c.Body()), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		ev, err := parseAttlogLine(line, sn)
		if err != nil {
			fmt.Println("Baris ATTLOG dilewati:", err)
			continue
		}

		if _, err := h.attendanceUC.ProcessEvent(*ev); err != nil {
			fmt.Println("Record ATTLOG diabaikan:", err)
		}
	}

	return c.SendString("OK")
}

func parseAttlogLine(line string, deviceSN string) (*usecase.AttendanceEvent, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 3 {
		return nil, fmt.Errorf("kolom kurang: %q", line)
	}

	badge := strings.TrimSpace(fields[0])
	if badge == "" {
		return nil, fmt.Errorf("badge ID kosong: %q", line)
	}

	ts, err := time.ParseInLocation("2006-01-02 15:04:05", strings.TrimSpace(fields[1]), usecase.WIB)
	if err != nil {
		return nil, fmt.Errorf("datetime tidak valid: %q", fields[1])
	}

	eventType := usecase.EventCheckOut
	if strings.TrimSpace(fields[2]) == "0" {
		eventType = usecase.EventCheckIn
	}

	return &usecase.AttendanceEvent{
		BadgeID:   badge,
		Timestamp: ts,
		Type:      eventType,
		Method:    model.MethodFingerprint,
		DeviceSN:  deviceSN,
	}, nil
}

// Ping: cek konektivitas dari mesin.
func (h *DeviceHandler) Ping(c *fiber.Ctx) error {
	return c.SendString("OK")
}
