package models

import (
	"time"

	"gorm.io/datatypes"
)

type Customer struct {
	ID            int64           `gorm:"primaryKey;column:id"`
	Name          string          `gorm:"column:name;type:varchar(100)"`
	IDNumber      string          `gorm:"column:idnumber;type:varchar(20);index"`
	DateOfBirth   *datatypes.Date `gorm:"column:dateofbirth"`
	Phone         string          `gorm:"column:phone;type:varchar(30)"`
	Phone2        string          `gorm:"column:phone2;type:varchar(30)"`
	TaxID         string          `gorm:"column:taxid;type:varchar(20)"`
	CarNumber1    string          `gorm:"column:carnumber1;type:varchar(20)"`
	CarNumber2    string          `gorm:"column:carnumber2;type:varchar(20)"`
	Company       string          `gorm:"column:company;type:varchar(100)"`
	Habit         string          `gorm:"column:habit;type:text"`
	BookingSource string          `gorm:"column:bookingsource;type:varchar(50)"`
	BLReason      string          `gorm:"column:blreason;type:text"`
	Blacklist     bool            `gorm:"column:blacklist"`
	Line          bool            `gorm:"column:line"`
}

func (Customer) TableName() string { return "customers" }

// CustomerSearchResult is the slim row shape returned by the free-text search.
type CustomerSearchResult struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	IDNumber   string `json:"idNumber"`
	CarNumber1 string `json:"carNumber1"`
}

// CustomerDetail is the full profile shape used by detail lookups and the
// field search. DateOfBirth is rendered yyyy-MM-dd, empty when unset.
type CustomerDetail struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	IDNumber      string `json:"idNumber"`
	DateOfBirth   string `json:"dateOfBirth"`
	Phone         string `json:"phone"`
	Phone2        string `json:"phone2"`
	TaxID         string `json:"taxId"`
	CarNumber1    string `json:"carNumber1"`
	CarNumber2    string `json:"carNumber2"`
	Blacklist     bool   `json:"blacklist"`
	Habit         string `json:"habit"`
	BookingSource string `json:"bookingSource"`
	Line          bool   `json:"line"`
	BLReason      string `json:"blReason"`
	Company       string `json:"company"`
}

func (c Customer) ToDetail() CustomerDetail {
	dob := ""
	if c.DateOfBirth != nil {
		dob = time.Time(*c.DateOfBirth).Format("2006-01-02")
	}
	return CustomerDetail{
		ID:            c.ID,
		Name:          c.Name,
		IDNumber:      c.IDNumber,
		DateOfBirth:   dob,
		Phone:         c.Phone,
		Phone2:        c.Phone2,
		TaxID:         c.TaxID,
		CarNumber1:    c.CarNumber1,
		CarNumber2:    c.CarNumber2,
		Blacklist:     c.Blacklist,
		Habit:         c.Habit,
		BookingSource: c.BookingSource,
		Line:          c.Line,
		BLReason:      c.BLReason,
		Company:       c.Company,
	}
}

// CustomerUpdateRequest replaces the whole mutable profile. Omitted fields
// are written back empty, not preserved.
type CustomerUpdateRequest struct {
	Name          string `json:"name"`
	IDNumber      string `json:"idNumber"`
	DateOfBirth   string `json:"dateOfBirth"`
	Phone         string `json:"phone"`
	Phone2        string `json:"phone2"`
	TaxID         string `json:"taxId"`
	CarNumber1    string `json:"carNumber1"`
	CarNumber2    string `json:"carNumber2"`
	Company       string `json:"company"`
	Habit         string `json:"habit"`
	BookingSource string `json:"bookingSource"`
	BLReason      string `json:"blReason"`
	Blacklist     bool   `json:"blacklist"`
	Line          bool   `json:"line"`
}
