package db

import (
	"log"

	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/model"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/helper"
)

// SeedUsers creates one account per role on an empty database so a fresh
// deployment is immediately usable. Default passwords are meant to be
// rotated after first login.
func SeedUsers() {
	seeds := []struct {
		Name     string
		Email    string
		Password string
		Role     model.Role
	}{
		{"Dosen Contoh", "dosen@kampus.ac.id", "dosen123", model.RoleDosen},
		{"Admin Lab", "adminlab@kampus.ac.id", "adminlab123", model.RoleAdminLab},
		{"Admin Jurusan", "adminjurusan@kampus.ac.id", "adminjurusan123", model.RoleAdminJurusan},
	}

	for _, s := range seeds {
		var count int64
		DB.Model(&model.User{}).Where("email = ?", s.Email).Count(&count)
		if count > 0 {
			continue
		}

		hash, err := helper.HashPassword(s.Password)
		if err != nil {
			log.Println("Seed: failed to hash password:", err)
			continue
		}

		user := model.User{
			Name:         s.Name,
			Email:        s.Email,
			PasswordHash: hash,
			Role:         s.Role,
			IsActive:     true,
		}
		if err := DB.Create(&user).Error; err != nil {
			log.Printf("Seed: failed to create %s: %v", s.Email, err)
		}
	}
}
