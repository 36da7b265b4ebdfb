package config

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// token lifetimes in minutes
	AccessExpire  int `json:"access_expire" yaml:"access_expire"`
	RefreshExpire int `json:"refresh_expire" yaml:"refresh_expire"`
}
