package usecase

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"erp-kozo-backend/internal/model"
	"erp-kozo-backend/internal/repository"
)

var (
	ErrOrderTidakDitemukan       = errors.New("order tidak ditemukan")
	ErrStageBerubah              = errors.New("stage order sudah berubah, muat ulang data terlebih dahulu")
	ErrTransisiTidakValid        = errors.New("order hanya bisa maju satu stage sesuai urutan pipeline")
	ErrBelumAdaInvoice           = errors.New("buat invoice dulu sebelum order keluar dari stage DP produksi")
	ErrDpProduksiBelumVerifikasi = errors.New("DP produksi belum diverifikasi")
	ErrPelunasanBelumVerifikasi  = errors.New("pelunasan belum diverifikasi")
	ErrResiBelumDiisi            = errors.New("nomor resi wajib diisi sebelum order masuk stage pengiriman")
	ErrJenisPembayaranTidakValid = errors.New("jenis pembayaran tidak dikenal")
)

type OrderUsecase struct {
	orderRepo   repository.OrderRepository
	invoiceRepo repository.InvoiceRepository
	invoiceUC   *InvoiceUsecase
}

func NewOrderUsecase(orderRepo repository.OrderRepository, invoiceRepo repository.InvoiceRepository, invoiceUC *InvoiceUsecase) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:   orderRepo,
		invoiceRepo: invoiceRepo,
		invoiceUC:   invoiceUC,
	}
}

type MoveResult struct {
	Order      *model.Order
	SPKWarning string // Terisi kalau transisi sukses tapi nomor SPK gagal digenerate
}

// MoveToNextStage memindahkan order satu langkah maju di pipeline.
// Validasi yang dicek adalah syarat KELUAR dari stage sekarang: dua stage
// penjaga (dp_produksi, pelunasan) menahan order sampai pembayarannya
// diverifikasi. Tidak ada mutasi parsial: kalau validasi gagal, order
// tidak berubah sama sekali.
func (u *OrderUsecase) MoveToNextStage(orderID uint, currentStage string, nextStage string) (*MoveResult, error) {
	order, err := u.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderTidakDitemukan
	}
	if order.Stage != currentStage {
		return nil, ErrStageBerubah
	}

	stages := model.OrderStages()
	idx := -1
	for i, s := range stages {
		if s == currentStage {
			idx = i
			break
		}
	}
	if idx == -1 || idx == len(stages)-1 || stages[idx+1] != nextStage {
		return nil, ErrTransisiTidakValid
	}

	// Syarat keluar stage penjaga
	switch currentStage {
	case model.StageDpProduksi:
		if _, err := u.invoiceRepo.GetByOrderID(order.ID); err != nil {
			return nil, ErrBelumAdaInvoice
		}
		if !order.DpProduksiVerified {
			return nil, ErrDpProduksiBelumVerifikasi
		}
	case model.StagePelunasan:
		if !order.PelunasanVerified {
			return nil, ErrPelunasanBelumVerifikasi
		}
	}

	now := time.Now().In(WIB)
	result := &MoveResult{Order: order}

	if nextStage == model.StagePengiriman {
		if order.TrackingNumber == nil || *order.TrackingNumber == "" {
			return nil, ErrResiBelumDiisi
		}
		order.ShippedAt = &now
	}

	// Nomor SPK digenerate sekali, saat pertama kali masuk antrean produksi.
	// Gagal generate tidak membatalkan transisi, hanya dilaporkan terpisah.
	if nextStage == model.StageAntreanProduksi && order.SpkNumber == nil {
		spk, err := u.generateSPKNumber(now)
		if err != nil {
			result.SPKWarning = "stage berpindah, tapi nomor SPK gagal digenerate: " + err.Error()
			fmt.Println("Gagal generate nomor SPK:", err)
		} else {
			order.SpkNumber = &spk
		}
	}

	order.Stage = nextStage
	order.StageEnteredAt = now

	if err := u.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return result, nil
}

// generateSPKNumber: SPK-{tahun}{bulan}-{sequence 4 digit}, sequence
// melanjutkan nomor tertinggi bulan berjalan (mulai dari 1).
func (u *OrderUsecase) generateSPKNumber(now time.Time) (string, error) {
	prefix := "SPK-" + now.Format("200601") + "-"

	existing, err := u.orderRepo.ListSPKNumbers(prefix)
	if err != nil {
		return "", err
	}

	maxSeq := 0
	for _, nomor := range existing {
		seq, err := strconv.Atoi(strings.TrimPrefix(nomor, prefix))
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}

	return fmt.Sprintf("%s%04d", prefix, maxSeq+1), nil
}

type VerifyResult struct {
	Order    *model.Order
	Kuitansi *model.Kuitansi // Terisi kalau verifikasi memicu kuitansi otomatis
}

// VerifyDPPayment menandai slot pembayaran terverifikasi, terlepas dari
// posisi stage. Kalau order sudah punya invoice dan jumlahnya positif,
// kuitansi dibuat otomatis untuk jumlah itu; kalau invoice belum ada,
// verifikasi tetap sukses dan kuitansinya menyusul saat invoice dibuat
// (lihat InvoiceUsecase.CreateInvoice).
func (u *OrderUsecase) VerifyDPPayment(orderID uint, jenis string, jumlah *float64) (*VerifyResult, error) {
	order, err := u.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderTidakDitemukan
	}

	now := time.Now().In(WIB)
	var amount float64

	switch jenis {
	case model.JenisDpDesain:
		if jumlah != nil {
			order.DpDesain = *jumlah
		}
		order.DpDesainVerified = true
		order.DpDesainVerifiedAt = &now
		amount = order.DpDesain
	case model.JenisDpProduksi:
		if jumlah != nil {
			order.DpProduksi = *jumlah
		}
		order.DpProduksiVerified = true
		order.DpProduksiVerifiedAt = &now
		amount = order.DpProduksi
	case model.JenisPelunasan:
		if jumlah != nil {
			order.Pelunasan = *jumlah
		}
		order.PelunasanVerified = true
		order.PelunasanVerifiedAt = &now
		amount = order.Pelunasan
	default:
		return nil, ErrJenisPembayaranTidakValid
	}

	if err := u.orderRepo.Update(order); err != nil {
		return nil, err
	}

	result := &VerifyResult{Order: order}

	invoice, err := u.invoiceRepo.GetByOrderID(order.ID)
	if err == nil && amount > 0 {
		kuitansi, err := u.invoiceUC.CreateKuitansi(&model.Kuitansi{
			InvoiceID:  invoice.ID,
			Jumlah:     amount,
			Metode:     "transfer",
			Keterangan: "Pembayaran " + jenis + " (otomatis)",
		})
		if err != nil {
			fmt.Println("Verifikasi sukses, tapi kuitansi otomatis gagal:", err)
		} else {
			result.Kuitansi = kuitansi
		}
	}

	return result, nil
}
