package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"erp-kozo-backend/internal/model"
	"erp-kozo-backend/internal/repository"
	"erp-kozo-backend/internal/repository/memory"
)

func newTestOrder(t *testing.T) (*OrderUsecase, *InvoiceUsecase, *memory.Store) {
	t.Helper()
	store := memory.New()
	invoiceUC := NewInvoiceUsecase(store.Invoice(), store.Kuitansi(), store.Order())
	orderUC := NewOrderUsecase(store.Order(), store.Invoice(), invoiceUC)
	return orderUC, invoiceUC, store
}

func seedOrder(t *testing.T, store *memory.Store, stage string) *model.Order {
	t.Helper()
	order := &model.Order{
		CustomerID:     1,
		NamaPesanan:    "Jersey Futsal",
		Jumlah:         20,
		Stage:          stage,
		StageEnteredAt: time.Now().In(WIB).Add(-time.Hour),
	}
	if err := store.Order().Create(order); err != nil {
		t.Fatalf("seed order gagal: %v", err)
	}
	return order
}

func seedInvoiceForOrder(t *testing.T, uc *InvoiceUsecase, orderID uint, subTotal float64) *model.Invoice {
	t.Helper()
	invoice := &model.Invoice{OrderID: &orderID, CustomerID: 1, SubTotal: subTotal}
	if _, err := uc.CreateInvoice(invoice); err != nil {
		t.Fatalf("seed invoice gagal: %v", err)
	}
	return invoice
}

func TestMoveStageMajuSatuLangkah(t *testing.T) {
	orderUC, _, store := newTestOrder(t)
	order := seedOrder(t, store, model.StageCustomerDpDesain)
	sebelum := order.StageEnteredAt

	result, err := orderUC.MoveToNextStage(order.ID, model.StageCustomerDpDesain, model.StageProsesDesain)
	if err != nil {
		t.Fatalf("transisi valid gagal: %v", err)
	}
	if result.Order.Stage != model.StageProsesDesain {
		t.Errorf("Stage = %q, mau %q", result.Order.Stage, model.StageProsesDesain)
	}
	if !result.Order.StageEnteredAt.After(sebelum) {
		t.Errorf("StageEnteredAt harus direset saat pindah stage")
	}
}

func TestMoveStageTidakBolehLompat(t *testing.T) {
	orderUC, _, store := newTestOrder(t)
	order := seedOrder(t, store, model.StageCustomerDpDesain)

	tests := []struct {
		name    string
		current string
		next    string
	}{
		{"lompat dua stage", model.StageCustomerDpDesain, model.StageDpProduksi},
		{"mundur", model.StageCustomerDpDesain, model.StageCustomerDpDesain},
		{"stage tak dikenal", model.StageCustomerDpDesain, "stage_ngawur"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := orderUC.MoveToNextStage(order.ID, tt.current, tt.next); !errors.Is(err, ErrTransisiTidakValid) {
				t.Fatalf("mau ErrTransisiTidakValid, dapat %v", err)
			}
		})
	}

	// Stage tersimpan tidak berubah setelah transisi gagal
	saved, _ := store.Order().GetByID(order.ID)
	if saved.Stage != model.StageCustomerDpDesain {
		t.Fatalf("stage berubah jadi %q padahal semua transisi gagal", saved.Stage)
	}
}

func TestMoveStageCurrentStageBasi(t *testing.T) {
	orderUC, _, store := newTestOrder(t)
	order := seedOrder(t, store, model.StageProsesDesain)

	if _, err := orderUC.MoveToNextStage(order.ID, model.StageCustomerDpDesain, model.StageProsesDesain); !errors.Is(err, ErrStageBerubah) {
		t.Fatalf("current_stage basi harus ErrStageBerubah, dapat %v", err)
	}
}

func TestGerbangDpProduksi(t *testing.T) {
	orderUC, invoiceUC, store := newTestOrder(t)

	// Tanpa invoice: tertahan
	order := seedOrder(t, store, model.StageDpProduksi)
	if _, err := orderUC.MoveToNextStage(order.ID, model.StageDpProduksi, model.StageAntreanProduksi); !errors.Is(err, ErrBelumAdaInvoice) {
		t.Fatalf("tanpa invoice harus ErrBelumAdaInvoice, dapat %v", err)
	}

	// Ada invoice tapi DP belum diverifikasi: tetap tertahan
	seedInvoiceForOrder(t, invoiceUC, order.ID, 1000000)
	if _, err := orderUC.MoveToNextStage(order.ID, model.StageDpProduksi, model.StageAntreanProduksi); !errors.Is(err, ErrDpProduksiBelumVerifikasi) {
		t.Fatalf("DP belum verifikasi harus ErrDpProduksiBelumVerifikasi, dapat %v", err)
	}

	saved, _ := store.Order().GetByID(order.ID)
	if saved.Stage != model.StageDpProduksi {
		t.Fatalf("order keluar dari gerbang tanpa verifikasi: stage %q", saved.Stage)
	}

	// Setelah verifikasi: lolos
	saved.DpProduksiVerified = true
	store.Order().Update(saved)
	if _, err := orderUC.MoveToNextStage(order.ID, model.StageDpProduksi, model.StageAntreanProduksi); err != nil {
		t.Fatalf("transisi setelah verifikasi gagal: %v", err)
	}
}

func TestGerbangPelunasanDanResi(t *testing.T) {
	orderUC, _, store := newTestOrder(t)
	order := seedOrder(t, store, model.StagePelunasan)

	if _, err := orderUC.MoveToNextStage(order.ID, model.StagePelunasan, model.StagePengiriman); !errors.Is(err, ErrPelunasanBelumVerifikasi) {
		t.Fatalf("mau ErrPelunasanBelumVerifikasi, dapat %v", err)
	}

	saved, _ := store.Order().GetByID(order.ID)
	saved.PelunasanVerified = true
	store.Order().Update(saved)

	if _, err := orderUC.MoveToNextStage(order.ID, model.StagePelunasan, model.StagePengiriman); !errors.Is(err, ErrResiBelumDiisi) {
		t.Fatalf("tanpa resi harus ErrResiBelumDiisi, dapat %v", err)
	}

	resi := "JNE-123456"
	saved, _ = store.Order().GetByID(order.ID)
	saved.TrackingNumber = &resi
	store.Order().Update(saved)

	result, err := orderUC.MoveToNextStage(order.ID, model.StagePelunasan, model.StagePengiriman)
	if err != nil {
		t.Fatalf("transisi ke pengiriman gagal: %v", err)
	}
	if result.Order.ShippedAt == nil {
		t.Fatalf("ShippedAt harus terisi saat masuk pengiriman")
	}
}

func TestNomorSPKBerurutanTanpaCelah(t *testing.T) {
	orderUC, invoiceUC, store := newTestOrder(t)

	prefix := "SPK-" + time.Now().In(WIB).Format("200601") + "-"

	var nomors []string
	for i := 0; i < 3; i++ {
		order := seedOrder(t, store, model.StageDpProduksi)
		order.DpProduksiVerified = true
		store.Order().Update(order)
		seedInvoiceForOrder(t, invoiceUC, order.ID, 1000000)

		result, err := orderUC.MoveToNextStage(order.ID, model.StageDpProduksi, model.StageAntreanProduksi)
		if err != nil {
			t.Fatalf("order %d gagal masuk antrean: %v", i, err)
		}
		if result.Order.SpkNumber == nil {
			t.Fatalf("order %d tidak dapat nomor SPK", i)
		}
		nomors = append(nomors, *result.Order.SpkNumber)
	}

	for i, nomor := range nomors {
		mau := fmt.Sprintf("%s%04d", prefix, i+1)
		if nomor != mau {
			t.Errorf("SPK ke-%d = %q, mau %q", i+1, nomor, mau)
		}
	}
}

func TestNomorSPKOrderDihapusDibebaskan(t *testing.T) {
	orderUC, invoiceUC, store := newTestOrder(t)

	masukAntrean := func() *MoveResult {
		order := seedOrder(t, store, model.StageDpProduksi)
		order.DpProduksiVerified = true
		store.Order().Update(order)
		seedInvoiceForOrder(t, invoiceUC, order.ID, 1000000)

		result, err := orderUC.MoveToNextStage(order.ID, model.StageDpProduksi, model.StageAntreanProduksi)
		if err != nil {
			t.Fatalf("masuk antrean gagal: %v", err)
		}
		return result
	}

	pertama := masukAntrean()
	if err := store.Order().Delete(pertama.Order.ID); err != nil {
		t.Fatalf("hapus order gagal: %v", err)
	}

	// Order terhapus tidak boleh menahan nomornya: order berikutnya harus
	// tetap dapat nomor SPK tanpa bentrok
	kedua := masukAntrean()
	if kedua.SPKWarning != "" {
		t.Fatalf("generate SPK setelah order dihapus gagal: %s", kedua.SPKWarning)
	}
	if kedua.Order.SpkNumber == nil || *kedua.Order.SpkNumber != *pertama.Order.SpkNumber {
		t.Fatalf("nomor SPK order terhapus harus dipakai ulang, dapat %v", kedua.Order.SpkNumber)
	}
}

type spkGagalOrderRepo struct {
	repository.OrderRepository
}

func (r spkGagalOrderRepo) ListSPKNumbers(prefix string) ([]string, error) {
	return nil, errors.New("timeout query nomor spk")
}

func TestGagalGenerateSPKTidakMemblokirTransisi(t *testing.T) {
	store := memory.New()
	invoiceUC := NewInvoiceUsecase(store.Invoice(), store.Kuitansi(), store.Order())
	orderRepo := spkGagalOrderRepo{store.Order()}
	orderUC := NewOrderUsecase(orderRepo, store.Invoice(), invoiceUC)

	order := seedOrder(t, store, model.StageDpProduksi)
	order.DpProduksiVerified = true
	store.Order().Update(order)
	seedInvoiceForOrder(t, invoiceUC, order.ID, 1000000)

	result, err := orderUC.MoveToNextStage(order.ID, model.StageDpProduksi, model.StageAntreanProduksi)
	if err != nil {
		t.Fatalf("transisi harus tetap sukses walau nomor SPK gagal: %v", err)
	}
	if result.SPKWarning == "" {
		t.Fatalf("kegagalan generate SPK harus dilaporkan lewat warning")
	}
	if result.Order.SpkNumber != nil {
		t.Fatalf("nomor SPK tidak boleh terisi saat generate gagal, dapat %q", *result.Order.SpkNumber)
	}

	saved, _ := store.Order().GetByID(order.ID)
	if saved.Stage != model.StageAntreanProduksi {
		t.Fatalf("stage tersimpan = %q, mau %q", saved.Stage, model.StageAntreanProduksi)
	}
}

func TestNomorSPKTidakDigenerateUlang(t *testing.T) {
	orderUC, _, store := newTestOrder(t)

	spk := "SPK-202501-0007"
	order := seedOrder(t, store, model.StageAntreanProduksi)
	order.SpkNumber = &spk
	store.Order().Update(order)

	result, err := orderUC.MoveToNextStage(order.ID, model.StageAntreanProduksi, model.StagePrintPress)
	if err != nil {
		t.Fatalf("transisi gagal: %v", err)
	}
	if *result.Order.SpkNumber != spk {
		t.Fatalf("nomor SPK berubah dari %q jadi %q", spk, *result.Order.SpkNumber)
	}
}

func TestVerifyDPPaymentDenganInvoiceMembuatKuitansi(t *testing.T) {
	orderUC, invoiceUC, store := newTestOrder(t)

	order := seedOrder(t, store, model.StageDpProduksi)
	order.DpProduksi = 400000
	store.Order().Update(order)
	invoice := seedInvoiceForOrder(t, invoiceUC, order.ID, 1000000)

	result, err := orderUC.VerifyDPPayment(order.ID, model.JenisDpProduksi, nil)
	if err != nil {
		t.Fatalf("verifikasi gagal: %v", err)
	}
	if !result.Order.DpProduksiVerified || result.Order.DpProduksiVerifiedAt == nil {
		t.Fatalf("flag verifikasi tidak terisi")
	}
	if result.Kuitansi == nil || result.Kuitansi.Jumlah != 400000 {
		t.Fatalf("kuitansi otomatis tidak sesuai: %+v", result.Kuitansi)
	}

	saved, _ := store.Invoice().GetByID(invoice.ID)
	if saved.TotalDibayar != 400000 {
		t.Fatalf("TotalDibayar = %v, mau 400000", saved.TotalDibayar)
	}
}

func TestVerifyDPPaymentTanpaInvoiceTetapSukses(t *testing.T) {
	orderUC, _, store := newTestOrder(t)

	order := seedOrder(t, store, model.StageCustomerDpDesain)
	order.DpDesain = 250000
	store.Order().Update(order)

	result, err := orderUC.VerifyDPPayment(order.ID, model.JenisDpDesain, nil)
	if err != nil {
		t.Fatalf("verifikasi tanpa invoice harus tetap sukses: %v", err)
	}
	if !result.Order.DpDesainVerified {
		t.Fatalf("flag verifikasi tidak terisi")
	}
	if result.Kuitansi != nil {
		t.Fatalf("tanpa invoice tidak boleh ada kuitansi, dapat %+v", result.Kuitansi)
	}
}

func TestVerifyDPPaymentOverrideJumlah(t *testing.T) {
	orderUC, _, store := newTestOrder(t)

	order := seedOrder(t, store, model.StageCustomerDpDesain)
	jumlah := 300000.0
	result, err := orderUC.VerifyDPPayment(order.ID, model.JenisDpDesain, &jumlah)
	if err != nil {
		t.Fatalf("verifikasi gagal: %v", err)
	}
	if result.Order.DpDesain != 300000 {
		t.Fatalf("DpDesain = %v, mau 300000 (override)", result.Order.DpDesain)
	}
}

func TestVerifyDPPaymentJenisTidakDikenal(t *testing.T) {
	orderUC, _, store := newTestOrder(t)
	order := seedOrder(t, store, model.StageCustomerDpDesain)

	if _, err := orderUC.VerifyDPPayment(order.ID, "cicilan", nil); !errors.Is(err, ErrJenisPembayaranTidakValid) {
		t.Fatalf("mau ErrJenisPembayaranTidakValid, dapat %v", err)
	}
}

func TestOrderTanpaVerifikasiTidakPernahLewatGerbang(t *testing.T) {
	orderUC, invoiceUC, store := newTestOrder(t)

	// Order jalan dari awal sampai mentok: tanpa verifikasi DP produksi,
	// order tidak boleh terlihat di stage manapun setelah dp_produksi.
	order := seedOrder(t, store, model.StageCustomerDpDesain)
	seedInvoiceForOrder(t, invoiceUC, order.ID, 1000000)

	stages := model.OrderStages()
	for i := 0; i < len(stages)-1; i++ {
		_, err := orderUC.MoveToNextStage(order.ID, stages[i], stages[i+1])
		if err != nil {
			break
		}
	}

	saved, _ := store.Order().GetByID(order.ID)
	terlarang := map[string]bool{
		model.StageAntreanProduksi: true,
		model.StagePrintPress:      true,
		model.StageCuttingJahit:    true,
		model.StagePacking:         true,
		model.StagePelunasan:       true,
		model.StagePengiriman:      true,
	}
	if terlarang[saved.Stage] {
		t.Fatalf("order tanpa verifikasi DP produksi terlihat di stage %q", saved.Stage)
	}
	if saved.Stage != model.StageDpProduksi {
		t.Fatalf("order harus mentok di dp_produksi, dapat %q", saved.Stage)
	}
}
