// Package memory menyediakan implementasi repository berbasis map untuk
// unit test dan mode development tanpa MySQL. Perilakunya meniru kontrak
// implementasi GORM, termasuk gorm.ErrRecordNotFound untuk data kosong.
package memory

import (
	"sort"
	"strings"
	"sync"

	"erp-kozo-backend/internal/model"

	"gorm.io/gorm"
)

type Store struct {
	mu sync.Mutex

	nextID uint

	karyawans map[uint]model.Karyawan
	logs      map[uint]model.AttendanceLog
	deficits  map[uint]model.AttendanceDeficitReport
	customers map[uint]model.Customer
	orders    map[uint]model.Order
	invoices  map[uint]model.Invoice
	kuitansis map[uint]model.Kuitansi
}

func New() *Store {
	return &Store{
		nextID:    1,
		karyawans: make(map[uint]model.Karyawan),
		logs:      make(map[uint]model.AttendanceLog),
		deficits:  make(map[uint]model.AttendanceDeficitReport),
		customers: make(map[uint]model.Customer),
		orders:    make(map[uint]model.Order),
		invoices:  make(map[uint]model.Invoice),
		kuitansis: make(map[uint]model.Kuitansi),
	}
}

func (s *Store) allocID() uint {
	id := s.nextID
	s.nextID++
	return id
}

// ---- KaryawanRepository ----

func (s *Store) Create(karyawan *model.Karyawan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	karyawan.ID = s.allocID()
	s.karyawans[karyawan.ID] = *karyawan
	return nil
}

func (s *Store) GetAll() ([]model.Karyawan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var list []model.Karyawan
	for _, k := range s.karyawans {
		list = append(list, k)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nama < list[j].Nama })
	return list, nil
}

func (s *Store) GetByID(id uint) (*model.Karyawan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k, ok := s.karyawans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &k, nil
}

func (s *Store) GetByNIK(nik string) (*model.Karyawan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range s.karyawans {
		if k.NIK == nik {
			out := k
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *Store) Update(karyawan *model.Karyawan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.karyawans[karyawan.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.karyawans[karyawan.ID] = *karyawan
	return nil
}

func (s *Store) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.karyawans, id)
	return nil
}

func (s *Store) CountActive() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, k := range s.karyawans {
		if k.Status == model.KaryawanAktif {
			n++
		}
	}
	return n, nil
}

// ---- AttendanceRepository ----

type AttendanceStore struct{ s *Store }

func (s *Store) Attendance() *AttendanceStore { return &AttendanceStore{s} }

func (a *AttendanceStore) CreateIfAbsent(log *model.AttendanceLog) (bool, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	for _, l := range a.s.logs {
		if l.KaryawanID == log.KaryawanID && l.Tanggal == log.Tanggal {
			return false, nil
		}
	}
	log.ID = a.s.allocID()
	a.s.logs[log.ID] = *log
	return true, nil
}

func (a *AttendanceStore) GetByKaryawanAndDate(karyawanID uint, tanggal string) (*model.AttendanceLog, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	for _, l := range a.s.logs {
		if l.KaryawanID == karyawanID && l.Tanggal == tanggal {
			out := l
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (a *AttendanceStore) GetByID(id uint) (*model.AttendanceLog, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	l, ok := a.s.logs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &l, nil
}

func (a *AttendanceStore) GetByDate(tanggal string) ([]model.AttendanceLog, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	var list []model.AttendanceLog
	for _, l := range a.s.logs {
		if l.Tanggal == tanggal {
			list = append(list, l)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (a *AttendanceStore) GetByMonth(karyawanID uint, bulan string, tahun string) ([]model.AttendanceLog, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	prefix := tahun + "-" + bulan + "-"
	var list []model.AttendanceLog
	for _, l := range a.s.logs {
		if l.KaryawanID == karyawanID && strings.HasPrefix(l.Tanggal, prefix) {
			list = append(list, l)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Tanggal < list[j].Tanggal })
	return list, nil
}

func (a *AttendanceStore) Update(log *model.AttendanceLog) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	if _, ok := a.s.logs[log.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	a.s.logs[log.ID] = *log
	return nil
}

func (a *AttendanceStore) Delete(id uint) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	delete(a.s.logs, id)
	return nil
}

func (a *AttendanceStore) CountByDate(tanggal string) (int64, error) {
	list, _ := a.GetByDate(tanggal)
	return int64(len(list)), nil
}

// ---- DeficitRepository ----

type DeficitStore struct{ s *Store }

func (s *Store) Deficit() *DeficitStore { return &DeficitStore{s} }

func (d *DeficitStore) Upsert(karyawanID uint, bulan string, tahun string, deficitHours float64) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	for id, r := range d.s.deficits {
		if r.KaryawanID == karyawanID && r.Bulan == bulan && r.Tahun == tahun {
			r.TotalDeficitHours += deficitHours
			r.DeficitCount++
			d.s.deficits[id] = r
			return nil
		}
	}
	report := model.AttendanceDeficitReport{
		KaryawanID:        karyawanID,
		Bulan:             bulan,
		Tahun:             tahun,
		TotalDeficitHours: deficitHours,
		DeficitCount:      1,
	}
	report.ID = d.s.allocID()
	d.s.deficits[report.ID] = report
	return nil
}

func (d *DeficitStore) GetByMonth(bulan string, tahun string) ([]model.AttendanceDeficitReport, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	var list []model.AttendanceDeficitReport
	for _, r := range d.s.deficits {
		if r.Bulan == bulan && r.Tahun == tahun {
			list = append(list, r)
		}
	}
	return list, nil
}

func (d *DeficitStore) GetByKaryawan(karyawanID uint) ([]model.AttendanceDeficitReport, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	var list []model.AttendanceDeficitReport
	for _, r := range d.s.deficits {
		if r.KaryawanID == karyawanID {
			list = append(list, r)
		}
	}
	return list, nil
}

// ---- CustomerRepository ----

type CustomerStore struct{ s *Store }

func (s *Store) Customer() *CustomerStore { return &CustomerStore{s} }

func (c *CustomerStore) Create(customer *model.Customer) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	customer.ID = c.s.allocID()
	c.s.customers[customer.ID] = *customer
	return nil
}

func (c *CustomerStore) GetAll() ([]model.Customer, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	var list []model.Customer
	for _, cu := range c.s.customers {
		list = append(list, cu)
	}
	return list, nil
}

func (c *CustomerStore) GetByID(id uint) (*model.Customer, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	cu, ok := c.s.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &cu, nil
}

func (c *CustomerStore) Update(customer *model.Customer) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if _, ok := c.s.customers[customer.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	c.s.customers[customer.ID] = *customer
	return nil
}

func (c *CustomerStore) Delete(id uint) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	delete(c.s.customers, id)
	return nil
}

// ---- OrderRepository ----

type OrderStore struct{ s *Store }

func (s *Store) Order() *OrderStore { return &OrderStore{s} }

func (o *OrderStore) Create(order *model.Order) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	order.ID = o.s.allocID()
	o.s.orders[order.ID] = *order
	return nil
}

func (o *OrderStore) GetAll() ([]model.Order, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	var list []model.Order
	for _, or := range o.s.orders {
		list = append(list, or)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (o *OrderStore) GetByID(id uint) (*model.Order, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	or, ok := o.s.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &or, nil
}

func (o *OrderStore) GetByStage(stage string) ([]model.Order, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	var list []model.Order
	for _, or := range o.s.orders {
		if or.Stage == stage {
			list = append(list, or)
		}
	}
	return list, nil
}

func (o *OrderStore) Update(order *model.Order) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	if _, ok := o.s.orders[order.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	o.s.orders[order.ID] = *order
	return nil
}

func (o *OrderStore) Delete(id uint) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	delete(o.s.orders, id)
	return nil
}

func (o *OrderStore) ListSPKNumbers(prefix string) ([]string, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	var nums []string
	for _, or := range o.s.orders {
		if or.SpkNumber != nil && strings.HasPrefix(*or.SpkNumber, prefix) {
			nums = append(nums, *or.SpkNumber)
		}
	}
	return nums, nil
}

// ---- InvoiceRepository ----

type InvoiceStore struct{ s *Store }

func (s *Store) Invoice() *InvoiceStore { return &InvoiceStore{s} }

func (iv *InvoiceStore) Create(invoice *model.Invoice) error {
	iv.s.mu.Lock()
	defer iv.s.mu.Unlock()
	invoice.ID = iv.s.allocID()
	iv.s.invoices[invoice.ID] = *invoice
	return nil
}

func (iv *InvoiceStore) GetAll() ([]model.Invoice, error) {
	iv.s.mu.Lock()
	defer iv.s.mu.Unlock()
	var list []model.Invoice
	for _, inv := range iv.s.invoices {
		list = append(list, inv)
	}
	return list, nil
}

func (iv *InvoiceStore) GetByID(id uint) (*model.Invoice, error) {
	iv.s.mu.Lock()
	defer iv.s.mu.Unlock()
	inv, ok := iv.s.invoices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &inv, nil
}

func (iv *InvoiceStore) GetByOrderID(orderID uint) (*model.Invoice, error) {
	iv.s.mu.Lock()
	defer iv.s.mu.Unlock()
	for _, inv := range iv.s.invoices {
		if inv.OrderID != nil && *inv.OrderID == orderID {
			out := inv
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (iv *InvoiceStore) Update(invoice *model.Invoice) error {
	iv.s.mu.Lock()
	defer iv.s.mu.Unlock()
	if _, ok := iv.s.invoices[invoice.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	iv.s.invoices[invoice.ID] = *invoice
	return nil
}

func (iv *InvoiceStore) Delete(id uint) error {
	iv.s.mu.Lock()
	defer iv.s.mu.Unlock()
	delete(iv.s.invoices, id)
	return nil
}

// ---- KuitansiRepository ----

type KuitansiStore struct{ s *Store }

func (s *Store) Kuitansi() *KuitansiStore { return &KuitansiStore{s} }

func (k *KuitansiStore) Create(kuitansi *model.Kuitansi) error {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()
	kuitansi.ID = k.s.allocID()
	k.s.kuitansis[kuitansi.ID] = *kuitansi
	return nil
}

func (k *KuitansiStore) GetAll() ([]model.Kuitansi, error) {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()
	var list []model.Kuitansi
	for _, ku := range k.s.kuitansis {
		list = append(list, ku)
	}
	return list, nil
}

func (k *KuitansiStore) GetByID(id uint) (*model.Kuitansi, error) {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()
	ku, ok := k.s.kuitansis[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &ku, nil
}

func (k *KuitansiStore) GetByInvoiceID(invoiceID uint) ([]model.Kuitansi, error) {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()
	var list []model.Kuitansi
	for _, ku := range k.s.kuitansis {
		if ku.InvoiceID == invoiceID {
			list = append(list, ku)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (k *KuitansiStore) Delete(id uint) error {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()
	delete(k.s.kuitansis, id)
	return nil
}
