package database

import (
	"log"

	"kost_market/constants"
	"kost_market/model"
	"kost_market/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin12345"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	users := []model.User{
		{UserName: "administration", Email: "admin@kost.local", Phone: "0800000000", Password: hashPassword, IsActive: true, Role: constants.ROLE_ADMIN},
		{UserName: "ibu-mawar", Email: "mawar@kost.local", Phone: "0811111111", Password: hashPassword, IsActive: true, Role: constants.ROLE_OWNER},
	}

	for _, user := range users {
		if err := db.Where(model.User{UserName: user.UserName}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed user:", user.UserName, "error:", err)
		}
	}

	var count int64
	db.Model(&model.Property{}).Count(&count)
	if count > 0 {
		return
	}

	var owner model.User
	if err := db.Where(model.User{UserName: "ibu-mawar"}).First(&owner).Error; err != nil {
		log.Println("failed to load seed owner:", err)
		return
	}

	property := model.Property{
		Slug:              "kost-mawar",
		Name:              "Kost Mawar",
		Address:           "Jl. Slamet Riyadi 12",
		City:              "Solo",
		Phone:             "0811111111",
		Email:             "mawar@kost.local",
		Description:       utils.StringPtr("Quiet kost near the city center"),
		CommonFacilities:  utils.ToJSONList([]string{"wifi", "kitchen", "laundry"}),
		ParkingFacilities: utils.ToJSONList([]string{"motorbike"}),
		Photos:            utils.ToJSONList([]string{}),
		IsPublished:       true,
		Status:            constants.PROPERTY_PUBLISHED,
		OwnerId:           owner.ID,
	}
	if err := db.Create(&property).Error; err != nil {
		log.Println("failed to seed property:", err)
		return
	}

	roomTypes := []model.RoomType{
		{PropertyId: property.ID, Name: "Standard", MonthlyPrice: 750000, MaxOccupancy: 1, Gender: constants.GENDER_ANY, Facilities: utils.ToJSONList([]string{"bed", "desk"}), Photos: utils.ToJSONList([]string{})},
		{PropertyId: property.ID, Name: "Deluxe", MonthlyPrice: 1500000, MaxOccupancy: 2, Gender: constants.GENDER_FEMALE, Facilities: utils.ToJSONList([]string{"bed", "desk", "ac", "bathroom"}), Photos: utils.ToJSONList([]string{})},
	}
	if err := db.Create(&roomTypes).Error; err != nil {
		log.Println("failed to seed room types:", err)
	}
}
