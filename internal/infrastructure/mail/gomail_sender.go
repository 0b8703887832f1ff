package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/fideliza-api/internal/application/ports"
)

var _ ports.MailSender = (*GomailSender)(nil)

// welcomeTmpl plantilla inline del correo de bienvenida al dueño del negocio.
// Se mantiene embebida para no depender de archivos en disco en despliegues containerizados.
var welcomeTmpl = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html lang="es">
<body style="font-family: Arial, sans-serif; color: #1e293b; max-width: 560px; margin: 0 auto;">
  <h2>¡Bienvenido a Fideliza, {{.BusinessName}}!</h2>
  <p>Tu cuenta quedó lista. Ya tienes activo tu <strong>Programa de Puntos</strong> y 14 días de prueba del plan Crecimiento.</p>
  <p>Próximos pasos:</p>
  <ol>
    <li>Personaliza los colores y el logo de tu programa.</li>
    <li>Registra tu primera sucursal.</li>
    <li>Invita a tu equipo (gerentes y cajeros).</li>
  </ol>
  <p>Si tienes dudas, responde a este correo y te ayudamos.</p>
  <p style="color: #94a3b8; font-size: 12px;">Equipo Fideliza</p>
</body>
</html>`))

// GomailSender envía correos transaccionales vía SMTP usando gomail.
type GomailSender struct {
	host     string
	port     int
	user     string
	password string
	from     string
}

func NewGomailSender(host string, port int, user, password, from string) *GomailSender {
	return &GomailSender{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		from:     from,
	}
}

// SendWelcome envía el correo de bienvenida tras el aprovisionamiento del tenant.
func (s *GomailSender) SendWelcome(to, businessName string) error {
	var body bytes.Buffer
	if err := welcomeTmpl.Execute(&body, struct{ BusinessName string }{BusinessName: businessName}); err != nil {
		return fmt.Errorf("mail: procesar plantilla de bienvenida: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("¡Bienvenido a Fideliza, %s! 🎉", businessName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.host, s.port, s.user, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("mail: enviar correo SMTP: %w", err)
	}

	return nil
}
