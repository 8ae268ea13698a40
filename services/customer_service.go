package services

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-backoffice/models"
)

const customerSearchLimit = 100

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

// Search returns customers whose name, phone, ID number or primary plate
// contains the keyword (case-insensitive). An empty keyword returns the most
// recent rows instead.
func (s *CustomerService) Search(keyword string) ([]models.CustomerSearchResult, error) {
	q := s.DB.Model(&models.Customer{}).Order("id DESC").Limit(customerSearchLimit)

	kw := strings.TrimSpace(keyword)
	if kw != "" {
		like := "%" + strings.ToLower(kw) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(idnumber) LIKE ? OR LOWER(carnumber1) LIKE ?",
			like, like, like, like,
		)
	}

	var customers []models.Customer
	if err := q.Find(&customers).Error; err != nil {
		return nil, err
	}

	results := make([]models.CustomerSearchResult, 0, len(customers))
	for _, c := range customers {
		results = append(results, models.CustomerSearchResult{
			ID:         c.ID,
			Name:       c.Name,
			Phone:      c.Phone,
			IDNumber:   c.IDNumber,
			CarNumber1: c.CarNumber1,
		})
	}
	return results, nil
}

// SearchByField matches one column, with the match strategy keyed off the
// keyword length. The front end pre-validates that the length encodes intent
// (full number vs trailing digits); no independent format check here.
func (s *CustomerService) SearchByField(field, keyword string) ([]models.CustomerDetail, error) {
	kw := strings.TrimSpace(keyword)
	if kw == "" {
		return []models.CustomerDetail{}, nil
	}

	q := s.DB.Model(&models.Customer{}).Order("id DESC").Limit(customerSearchLimit)

	switch field {
	case "name":
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(kw)+"%")
	case "phone":
		if len(kw) == 10 {
			// full number, separators stripped
			q = q.Where("REPLACE(phone, '-', '') = ?", kw)
		} else {
			// trailing 3 digits
			q = q.Where("SUBSTR(REPLACE(phone, '-', ''), -3) = ?", kw)
		}
	case "idnumber":
		switch len(kw) {
		case 10:
			q = q.Where("LOWER(idnumber) = ?", strings.ToLower(kw))
		case 9:
			q = q.Where("SUBSTR(idnumber, -9) = ?", kw)
		default:
			q = q.Where("SUBSTR(idnumber, -3) = ?", kw)
		}
	default: // car1
		q = q.Where("LOWER(carnumber1) LIKE ?", "%"+strings.ToLower(kw)+"%")
	}

	var customers []models.Customer
	if err := q.Find(&customers).Error; err != nil {
		return nil, err
	}

	details := make([]models.CustomerDetail, 0, len(customers))
	for _, c := range customers {
		details = append(details, c.ToDetail())
	}
	return details, nil
}

func (s *CustomerService) GetByID(id int64) (*models.CustomerDetail, error) {
	var c models.Customer
	if err := s.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	detail := c.ToDetail()
	return &detail, nil
}

func (s *CustomerService) GetByIDNumber(idNumber string) (*models.CustomerDetail, error) {
	var c models.Customer
	if err := s.DB.Where("UPPER(idnumber) = UPPER(?)", idNumber).First(&c).Error; err != nil {
		return nil, err
	}
	detail := c.ToDetail()
	return &detail, nil
}

var dobLayouts = []string{"2006-01-02", "2006/01/02"}

// Update replaces every mutable profile field. A date of birth that doesn't
// parse is stored as NULL rather than rejecting the whole update. Returns
// false when no row matched the id.
func (s *CustomerService) Update(id int64, req models.CustomerUpdateRequest) (bool, error) {
	var dob interface{}
	if raw := strings.TrimSpace(req.DateOfBirth); raw != "" {
		for _, layout := range dobLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				dob = datatypes.Date(t)
				break
			}
		}
	}

	res := s.DB.Model(&models.Customer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":          req.Name,
		"idnumber":      req.IDNumber,
		"dateofbirth":   dob,
		"phone":         req.Phone,
		"phone2":        req.Phone2,
		"taxid":         req.TaxID,
		"carnumber1":    req.CarNumber1,
		"carnumber2":    req.CarNumber2,
		"company":       req.Company,
		"habit":         req.Habit,
		"bookingsource": req.BookingSource,
		"blreason":      req.BLReason,
		"blacklist":     req.Blacklist,
		"line":          req.Line,
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
