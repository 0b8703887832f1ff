package ports

// MailSender define el puerto de salida para envío de correo transaccional.
// Los envíos son best-effort: un fallo se registra pero nunca revierte la
// operación de negocio que lo originó.
type MailSender interface {
	SendWelcome(to, businessName string) error
}
