package usecase

import (
	"errors"
	"fmt"
	"strings"

	"erp-kozo-backend/internal/model"
	"erp-kozo-backend/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvoiceTidakDitemukan   = errors.New("invoice tidak ditemukan")
	ErrKuitansiTidakDitemukan  = errors.New("kuitansi tidak ditemukan")
	ErrJumlahTidakValid        = errors.New("jumlah pembayaran harus lebih dari nol")
	ErrInvoiceMasihAdaKuitansi = errors.New("invoice masih punya kuitansi, hapus kuitansinya dulu")
)

type InvoiceUsecase struct {
	invoiceRepo  repository.InvoiceRepository
	kuitansiRepo repository.KuitansiRepository
	orderRepo    repository.OrderRepository
}

func NewInvoiceUsecase(invoiceRepo repository.InvoiceRepository, kuitansiRepo repository.KuitansiRepository, orderRepo repository.OrderRepository) *InvoiceUsecase {
	return &InvoiceUsecase{
		invoiceRepo:  invoiceRepo,
		kuitansiRepo: kuitansiRepo,
		orderRepo:    orderRepo,
	}
}

// CreateInvoice menyimpan invoice baru. Kalau invoice terhubung ke order
// yang DP desainnya sudah diverifikasi (dan > 0), kuitansi susulan dibuat
// otomatis satu kali untuk DP tersebut.
func (u *InvoiceUsecase) CreateInvoice(invoice *model.Invoice) (*model.Kuitansi, error) {
	invoice.Total = invoice.SubTotal + invoice.PpnAmount
	invoice.TotalDibayar = 0
	invoice.SisaTagihan = invoice.Total
	invoice.StatusPembayaran = model.StatusBelumLunas
	if invoice.Nomor == "" {
		invoice.Nomor = "INV-" + strings.ToUpper(uuid.NewString()[:8])
	}

	if err := u.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}

	// Catch-up DP desain yang sudah diverifikasi sebelum invoice ada.
	if invoice.OrderID != nil {
		order, err := u.orderRepo.GetByID(*invoice.OrderID)
		if err == nil && order.DpDesainVerified && order.DpDesain > 0 {
			kuitansi, err := u.CreateKuitansi(&model.Kuitansi{
				InvoiceID:  invoice.ID,
				Jumlah:     order.DpDesain,
				Metode:     "transfer",
				Keterangan: "DP desain (otomatis)",
			})
			if err != nil {
				fmt.Println("Gagal membuat kuitansi DP desain otomatis:", err)
				return nil, nil
			}
			return kuitansi, nil
		}
	}

	return nil, nil
}

// CreateKuitansi menolak pembayaran yang melebihi sisa tagihan, lalu
// menghitung ulang agregat invoice secara sinkron.
func (u *InvoiceUsecase) CreateKuitansi(kuitansi *model.Kuitansi) (*model.Kuitansi, error) {
	invoice, err := u.invoiceRepo.GetByID(kuitansi.InvoiceID)
	if err != nil {
		return nil, ErrInvoiceTidakDitemukan
	}
	if kuitansi.Jumlah <= 0 {
		return nil, ErrJumlahTidakValid
	}
	if kuitansi.Jumlah > invoice.SisaTagihan {
		return nil, fmt.Errorf("jumlah kuitansi Rp %.0f melebihi sisa tagihan Rp %.0f",
			kuitansi.Jumlah, invoice.SisaTagihan)
	}

	if kuitansi.Nomor == "" {
		kuitansi.Nomor = "KW-" + strings.ToUpper(uuid.NewString()[:8])
	}

	if err := u.kuitansiRepo.Create(kuitansi); err != nil {
		return nil, err
	}
	if err := u.RecalcInvoice(kuitansi.InvoiceID); err != nil {
		return nil, err
	}
	return kuitansi, nil
}

// DeleteKuitansi menghapus kuitansi dan menghitung ulang status invoice
// (invoice lunas bisa kembali BELUM_LUNAS).
func (u *InvoiceUsecase) DeleteKuitansi(id uint) error {
	kuitansi, err := u.kuitansiRepo.GetByID(id)
	if err != nil {
		return ErrKuitansiTidakDitemukan
	}
	if err := u.kuitansiRepo.Delete(id); err != nil {
		return err
	}
	return u.RecalcInvoice(kuitansi.InvoiceID)
}

// DeleteInvoice ditolak selama masih ada kuitansi yang menunjuk ke invoice.
func (u *InvoiceUsecase) DeleteInvoice(id uint) error {
	if _, err := u.invoiceRepo.GetByID(id); err != nil {
		return ErrInvoiceTidakDitemukan
	}
	kuitansis, err := u.kuitansiRepo.GetByInvoiceID(id)
	if err != nil {
		return err
	}
	if len(kuitansis) > 0 {
		return ErrInvoiceMasihAdaKuitansi
	}
	return u.invoiceRepo.Delete(id)
}

// RecalcInvoice: total_dibayar = jumlah semua kuitansi, sisa_tagihan =
// total - total_dibayar, status SUDAH_LUNAS tepat saat sisa <= 0.
// Dipanggil sinkron setiap mutasi kuitansi, bukan lewat trigger database,
// supaya invariannya kelihatan dan bisa dites di kode aplikasi.
func (u *InvoiceUsecase) RecalcInvoice(invoiceID uint) error {
	invoice, err := u.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return ErrInvoiceTidakDitemukan
	}
	kuitansis, err := u.kuitansiRepo.GetByInvoiceID(invoiceID)
	if err != nil {
		return err
	}

	dibayar := 0.0
	for _, k := range kuitansis {
		dibayar += k.Jumlah
	}

	invoice.TotalDibayar = dibayar
	invoice.SisaTagihan = invoice.Total - dibayar
	if invoice.SisaTagihan <= 0 {
		invoice.StatusPembayaran = model.StatusSudahLunas
	} else {
		invoice.StatusPembayaran = model.StatusBelumLunas
	}

	return u.invoiceRepo.Update(invoice)
}
