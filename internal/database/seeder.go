package database

import (
	"log"

	"erp-kozo-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Seed Akun Owner Pertama
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("gantipassword123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Gagal hash password owner:", err)
	}

	owner := model.User{
		Name:     "Owner Kozo",
		Username: "owner",
		Password: string(hashedPassword),
		Role:     model.RoleOwner,
	}
	db.FirstOrCreate(&owner, model.User{Username: owner.Username})

	// 2. Seed Karyawan Contoh (NIK harus sama dengan badge ID di mesin)
	karyawans := []model.Karyawan{
		{NIK: "1", Nama: "Budi Santoso", Jabatan: "Operator Press", Status: model.KaryawanAktif},
		{NIK: "2", Nama: "Siti Rahma", Jabatan: "Penjahit", Status: model.KaryawanAktif},
		{NIK: "3", Nama: "Agus Wijaya", Jabatan: "Desainer", Status: model.KaryawanAktif},
	}
	for _, k := range karyawans {
		db.FirstOrCreate(&k, model.Karyawan{NIK: k.NIK})
	}

	// 3. Seed Customer Contoh
	customer := model.Customer{
		Nama:   "Komunitas Futsal Merdeka",
		NoHP:   "081234567890",
		Email:  "futsal.merdeka@example.com",
		Alamat: "Jl. Merdeka No. 1, Bandung",
	}
	db.FirstOrCreate(&customer, model.Customer{Nama: customer.Nama})
}
