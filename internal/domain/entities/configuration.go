package entities

import "strings"

// Configuration keys stored in master_configuracoes.
const (
	ConfigAdminUser           = "admin_usuario"
	ConfigAdminPassword       = "admin_senha"
	ConfigAdminName           = "admin_nome"
	ConfigAPIKey              = "api_key"
	ConfigNotificationWebhook = "webhook_notificacao"
	ConfigPixKeyType          = "pix_tipo_chave"
	ConfigPixKey              = "pix_chave"
	ConfigPixBeneficiary      = "pix_beneficiario"
	ConfigPayoutWallet        = "carteira_liquid"
)

// Configuration is the flat key/value settings store. Last write wins.
type Configuration map[string]string

func (c Configuration) Get(key string) string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c[key])
}

func (c Configuration) AdminName() string {
	if v := c.Get(ConfigAdminName); v != "" {
		return v
	}
	return DefaultAdminName
}

// Public drops the admin credentials; it is what the settings screen shows.
func (c Configuration) Public() Configuration {
	out := make(Configuration, len(c))
	for k, v := range c {
		if k == ConfigAdminPassword {
			continue
		}
		out[k] = v
	}
	return out
}
