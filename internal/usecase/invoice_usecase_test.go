package usecase

import (
	"errors"
	"testing"

	"erp-kozo-backend/internal/model"
	"erp-kozo-backend/internal/repository/memory"
)

func newTestInvoice(t *testing.T) (*InvoiceUsecase, *memory.Store) {
	t.Helper()
	store := memory.New()
	return NewInvoiceUsecase(store.Invoice(), store.Kuitansi(), store.Order()), store
}

func buatInvoice(t *testing.T, uc *InvoiceUsecase, subTotal, ppn float64) *model.Invoice {
	t.Helper()
	invoice := &model.Invoice{CustomerID: 1, SubTotal: subTotal, PpnAmount: ppn}
	if _, err := uc.CreateInvoice(invoice); err != nil {
		t.Fatalf("buat invoice gagal: %v", err)
	}
	return invoice
}

func TestCreateInvoiceMenghitungTotal(t *testing.T) {
	uc, store := newTestInvoice(t)
	invoice := buatInvoice(t, uc, 1000000, 110000)

	saved, _ := store.Invoice().GetByID(invoice.ID)
	if saved.Total != 1110000 {
		t.Errorf("Total = %v, mau 1110000", saved.Total)
	}
	if saved.SisaTagihan != saved.Total || saved.TotalDibayar != 0 {
		t.Errorf("invoice baru: dibayar=%v sisa=%v, mau 0 dan %v",
			saved.TotalDibayar, saved.SisaTagihan, saved.Total)
	}
	if saved.StatusPembayaran != model.StatusBelumLunas {
		t.Errorf("StatusPembayaran = %q, mau %q", saved.StatusPembayaran, model.StatusBelumLunas)
	}
	if saved.Nomor == "" {
		t.Errorf("Nomor invoice harus terisi otomatis")
	}
}

func TestKuitansiInvariantSisaTagihan(t *testing.T) {
	uc, store := newTestInvoice(t)
	invoice := buatInvoice(t, uc, 1000000, 0)

	// Urutan insert dan delete; setelah tiap operasi invariannya harus pegang
	k1, err := uc.CreateKuitansi(&model.Kuitansi{InvoiceID: invoice.ID, Jumlah: 300000})
	if err != nil {
		t.Fatalf("kuitansi 1 gagal: %v", err)
	}
	k2, err := uc.CreateKuitansi(&model.Kuitansi{InvoiceID: invoice.ID, Jumlah: 500000})
	if err != nil {
		t.Fatalf("kuitansi 2 gagal: %v", err)
	}

	cekInvariant := func(totalDibayar float64, status string) {
		t.Helper()
		saved, _ := store.Invoice().GetByID(invoice.ID)
		if saved.TotalDibayar != totalDibayar {
			t.Fatalf("TotalDibayar = %v, mau %v", saved.TotalDibayar, totalDibayar)
		}
		if saved.SisaTagihan != saved.Total-totalDibayar {
			t.Fatalf("SisaTagihan = %v, mau %v", saved.SisaTagihan, saved.Total-totalDibayar)
		}
		if saved.StatusPembayaran != status {
			t.Fatalf("StatusPembayaran = %q, mau %q", saved.StatusPembayaran, status)
		}
	}

	cekInvariant(800000, model.StatusBelumLunas)

	if _, err := uc.CreateKuitansi(&model.Kuitansi{InvoiceID: invoice.ID, Jumlah: 200000}); err != nil {
		t.Fatalf("pelunasan gagal: %v", err)
	}
	cekInvariant(1000000, model.StatusSudahLunas)

	// Hapus satu kuitansi: status balik BELUM_LUNAS
	if err := uc.DeleteKuitansi(k2.ID); err != nil {
		t.Fatalf("hapus kuitansi gagal: %v", err)
	}
	cekInvariant(500000, model.StatusBelumLunas)

	if err := uc.DeleteKuitansi(k1.ID); err != nil {
		t.Fatalf("hapus kuitansi gagal: %v", err)
	}
	cekInvariant(200000, model.StatusBelumLunas)
}

func TestKuitansiMelebihiSisaTagihanDitolak(t *testing.T) {
	uc, store := newTestInvoice(t)
	invoice := buatInvoice(t, uc, 1000000, 0)

	if _, err := uc.CreateKuitansi(&model.Kuitansi{InvoiceID: invoice.ID, Jumlah: 900000}); err != nil {
		t.Fatalf("kuitansi pertama gagal: %v", err)
	}

	_, err := uc.CreateKuitansi(&model.Kuitansi{InvoiceID: invoice.ID, Jumlah: 200000})
	if err == nil {
		t.Fatalf("kuitansi melebihi sisa tagihan harus ditolak")
	}

	// Tidak ada mutasi parsial: jumlah kuitansi dan agregat tidak berubah
	kuitansis, _ := store.Kuitansi().GetByInvoiceID(invoice.ID)
	if len(kuitansis) != 1 {
		t.Fatalf("kuitansi tersimpan = %d, mau 1", len(kuitansis))
	}
	saved, _ := store.Invoice().GetByID(invoice.ID)
	if saved.TotalDibayar != 900000 {
		t.Fatalf("TotalDibayar = %v, mau 900000", saved.TotalDibayar)
	}
}

func TestKuitansiJumlahNolDitolak(t *testing.T) {
	uc, _ := newTestInvoice(t)
	invoice := buatInvoice(t, uc, 1000000, 0)

	if _, err := uc.CreateKuitansi(&model.Kuitansi{InvoiceID: invoice.ID, Jumlah: 0}); !errors.Is(err, ErrJumlahTidakValid) {
		t.Fatalf("jumlah nol harus ErrJumlahTidakValid, dapat %v", err)
	}
}

func TestDeleteInvoiceDitolakSelamaMasihAdaKuitansi(t *testing.T) {
	uc, store := newTestInvoice(t)
	invoice := buatInvoice(t, uc, 1000000, 0)

	k, err := uc.CreateKuitansi(&model.Kuitansi{InvoiceID: invoice.ID, Jumlah: 500000})
	if err != nil {
		t.Fatalf("kuitansi gagal: %v", err)
	}

	if err := uc.DeleteInvoice(invoice.ID); !errors.Is(err, ErrInvoiceMasihAdaKuitansi) {
		t.Fatalf("mau ErrInvoiceMasihAdaKuitansi, dapat %v", err)
	}

	if err := uc.DeleteKuitansi(k.ID); err != nil {
		t.Fatalf("hapus kuitansi gagal: %v", err)
	}
	if err := uc.DeleteInvoice(invoice.ID); err != nil {
		t.Fatalf("hapus invoice setelah kuitansi kosong harus sukses: %v", err)
	}
	if _, err := store.Invoice().GetByID(invoice.ID); err == nil {
		t.Fatalf("invoice harus sudah terhapus")
	}
}

func TestCreateInvoiceCatchUpDpDesainTerverifikasi(t *testing.T) {
	uc, store := newTestInvoice(t)

	order := model.Order{CustomerID: 1, Stage: model.StageProsesDesain, DpDesain: 250000, DpDesainVerified: true}
	if err := store.Order().Create(&order); err != nil {
		t.Fatalf("seed order gagal: %v", err)
	}

	invoice := &model.Invoice{OrderID: &order.ID, CustomerID: 1, SubTotal: 1000000}
	kuitansi, err := uc.CreateInvoice(invoice)
	if err != nil {
		t.Fatalf("buat invoice gagal: %v", err)
	}
	if kuitansi == nil {
		t.Fatalf("DP desain terverifikasi harus memicu kuitansi otomatis")
	}
	if kuitansi.Jumlah != 250000 {
		t.Errorf("Jumlah kuitansi otomatis = %v, mau 250000", kuitansi.Jumlah)
	}

	saved, _ := store.Invoice().GetByID(invoice.ID)
	if saved.TotalDibayar != 250000 || saved.SisaTagihan != 750000 {
		t.Errorf("agregat setelah catch-up: dibayar=%v sisa=%v, mau 250000 dan 750000",
			saved.TotalDibayar, saved.SisaTagihan)
	}
}

func TestCreateInvoiceTanpaDpTerverifikasiTidakAdaKuitansi(t *testing.T) {
	uc, store := newTestInvoice(t)

	order := model.Order{CustomerID: 1, Stage: model.StageCustomerDpDesain, DpDesain: 250000}
	store.Order().Create(&order)

	invoice := &model.Invoice{OrderID: &order.ID, CustomerID: 1, SubTotal: 1000000}
	kuitansi, err := uc.CreateInvoice(invoice)
	if err != nil {
		t.Fatalf("buat invoice gagal: %v", err)
	}
	if kuitansi != nil {
		t.Fatalf("DP belum diverifikasi, tidak boleh ada kuitansi otomatis")
	}
}
