package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-backoffice/models"
)

func seedCustomers(t *testing.T, svc *CustomerService) {
	t.Helper()
	customers := []models.Customer{
		{Name: "Chen Wei", IDNumber: "A123456789", Phone: "0912-345-678", CarNumber1: "ABC-1234"},
		{Name: "Lin Mei", IDNumber: "B987654321", Phone: "0922-111-222", CarNumber1: "XYZ-9999"},
		{Name: "Wang Chen", IDNumber: "C111222333", Phone: "0933-000-678", CarNumber1: ""},
	}
	for i := range customers {
		assert.NoError(t, svc.DB.Create(&customers[i]).Error)
	}
}

func TestSearchFreeText(t *testing.T) {
	svc := NewCustomerService(newTestDB(t))
	seedCustomers(t, svc)

	// keyword matches name, case-insensitive, newest first
	results, err := svc.Search("chen")
	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "Wang Chen", results[0].Name)
	assert.Equal(t, "Chen Wei", results[1].Name)

	// plate match
	results, err = svc.Search("xyz-99")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "Lin Mei", results[0].Name)

	// empty keyword returns the most recent rows
	results, err = svc.Search("   ")
	assert.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestSearchByFieldIDNumberDispatch(t *testing.T) {
	svc := NewCustomerService(newTestDB(t))
	seedCustomers(t, svc)

	// 10 chars: full match, case-insensitive
	results, err := svc.SearchByField("idnumber", "a123456789")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "A123456789", results[0].IDNumber)

	// 9 chars: trailing 9
	results, err = svc.SearchByField("idnumber", "123456789")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "A123456789", results[0].IDNumber)

	// any other length: trailing 3
	results, err = svc.SearchByField("idnumber", "333")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "C111222333", results[0].IDNumber)

	// trailing-3 miss
	results, err = svc.SearchByField("idnumber", "000")
	assert.NoError(t, err)
	assert.Len(t, results, 0)
}

func TestSearchByFieldPhoneDispatch(t *testing.T) {
	svc := NewCustomerService(newTestDB(t))
	seedCustomers(t, svc)

	// 10 digits: exact match with separators stripped
	results, err := svc.SearchByField("phone", "0912345678")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "Chen Wei", results[0].Name)

	// anything else: trailing 3 digits — two numbers end in 678
	results, err = svc.SearchByField("phone", "678")
	assert.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchByFieldDefaultsToPlate(t *testing.T) {
	svc := NewCustomerService(newTestDB(t))
	seedCustomers(t, svc)

	results, err := svc.SearchByField("car1", "abc")
	assert.NoError(t, err)
	assert.Len(t, results, 1)

	// unknown selector falls back to the plate column
	results, err = svc.SearchByField("", "abc")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestGetByIDNumberCaseInsensitive(t *testing.T) {
	svc := NewCustomerService(newTestDB(t))
	seedCustomers(t, svc)

	detail, err := svc.GetByIDNumber("a123456789")
	assert.NoError(t, err)
	assert.Equal(t, "Chen Wei", detail.Name)
}

func TestUpdateFullReplace(t *testing.T) {
	svc := NewCustomerService(newTestDB(t))
	seedCustomers(t, svc)

	var existing models.Customer
	assert.NoError(t, svc.DB.Where("idnumber = ?", "A123456789").First(&existing).Error)

	ok, err := svc.Update(existing.ID, models.CustomerUpdateRequest{
		Name:        "Chen Wei",
		IDNumber:    "A123456789",
		DateOfBirth: "1990-05-20",
		Phone:       "0900-000-000",
	})
	assert.NoError(t, err)
	assert.True(t, ok)

	detail, err := svc.GetByID(existing.ID)
	assert.NoError(t, err)
	assert.Equal(t, "1990-05-20", detail.DateOfBirth)
	assert.Equal(t, "0900-000-000", detail.Phone)
	// omitted fields are replaced with empty, not preserved
	assert.Equal(t, "", detail.CarNumber1)
}

func TestUpdateStoresUnparsableDOBAsNull(t *testing.T) {
	svc := NewCustomerService(newTestDB(t))
	seedCustomers(t, svc)

	var existing models.Customer
	assert.NoError(t, svc.DB.Where("idnumber = ?", "B987654321").First(&existing).Error)

	ok, err := svc.Update(existing.ID, models.CustomerUpdateRequest{
		Name:        "Lin Mei",
		IDNumber:    "B987654321",
		DateOfBirth: "not-a-date",
	})
	assert.NoError(t, err)
	assert.True(t, ok)

	detail, err := svc.GetByID(existing.ID)
	assert.NoError(t, err)
	assert.Equal(t, "", detail.DateOfBirth)
}

func TestUpdateMissingCustomer(t *testing.T) {
	svc := NewCustomerService(newTestDB(t))

	ok, err := svc.Update(9999, models.CustomerUpdateRequest{Name: "Nobody"})
	assert.NoError(t, err)
	assert.False(t, ok)
}
