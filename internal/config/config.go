package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/mithaikart/storefront-service/internal/domain/coupon"
)

type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Redis    RedisConfig    `json:"redis"`
	Razorpay RazorpayConfig `json:"razorpay"`
	SMTP     SMTPConfig     `json:"smtp"`
	Admin    AdminConfig    `json:"admin"`
	Pricing  PricingConfig  `json:"pricing"`
	Coupons  []coupon.Coupon `json:"coupons"`
}

type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

type DatabaseConfig struct {
	Host           string `json:"host"`
	Port           int    `json:"port"`
	User           string `json:"user"`
	Password       string `json:"password"`
	DBName         string `json:"dbname"`
	SSLMode        string `json:"sslmode"`
	MigrationsPath string `json:"migrations_path"`
}

type RedisConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

type RazorpayConfig struct {
	KeyID     string `json:"key_id"`
	KeySecret string `json:"key_secret"`
	BaseURL   string `json:"base_url"`
	Currency  string `json:"currency"`
}

type SMTPConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	From     string `json:"from"`
}

type AdminConfig struct {
	// Bcrypt hash of the back-office API key.
	APIKeyHash string `json:"api_key_hash"`
}

type PricingConfig struct {
	DeliveryFee              float64 `json:"delivery_fee"`
	ColdPackingSurcharge     float64 `json:"cold_packing_surcharge"`
	GiftWrapSurcharge        float64 `json:"gift_wrap_surcharge"`
	FragileHandlingSurcharge float64 `json:"fragile_handling_surcharge"`
}

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	if config.Razorpay.BaseURL == "" {
		config.Razorpay.BaseURL = "https://api.razorpay.com/v1"
	}
	if config.Razorpay.Currency == "" {
		config.Razorpay.Currency = "INR"
	}
	if len(config.Coupons) == 0 {
		config.Coupons = DefaultCoupons()
	}

	return &config, nil
}

// DefaultCoupons is the static coupon catalog used when the config file does
// not override it.
func DefaultCoupons() []coupon.Coupon {
	return []coupon.Coupon{
		{
			Code:           "SWEETFREE",
			Type:           coupon.DiscountFixed,
			Amount:         100,
			MinOrderAmount: 500,
			Description:    "Flat ₹100 off on orders above ₹500",
		},
		{
			Code:        "WELCOME10",
			Type:        coupon.DiscountPercentage,
			Rate:        0.10,
			MaxDiscount: 200,
			Description: "10% off, up to ₹200",
		},
	}
}

func (c *DatabaseConfig) GetDSN() string {
	return "host=" + c.Host +
		" port=" + strconv.Itoa(c.Port) +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.DBName +
		" sslmode=" + c.SSLMode
}
