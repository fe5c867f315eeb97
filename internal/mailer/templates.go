package mailer

// ContactAckSubject is the subject line for the contact-form acknowledgment.
const ContactAckSubject = "Thanks for contacting Brains & Brawns!"

// ContactAckBody renders the acknowledgment email sent to a contact-form
// submitter.
func ContactAckBody(name string) string {
	return `
	<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8" />
		<style>
			body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
			.container { max-width: 600px; margin: 0 auto; background: #fff; padding: 30px; border-radius: 8px; box-shadow: 0 0 10px rgba(0,0,0,0.05); }
			h1 { color: #2e3a59; }
			p { color: #333; font-size: 16px; line-height: 1.6; }
			.footer { margin-top: 40px; font-size: 13px; color: #999; text-align: center; }
		</style>
	</head>
	<body>
		<div class="container">
			<h1>Hi ` + name + `,</h1>
			<p>Thank you for contacting <strong>Brains &amp; Brawns</strong>. We've received your message and our team will get back to you as soon as possible.</p>
			<p>We appreciate your interest and look forward to assisting you.</p>
			<p>Best regards,<br/>The Brains &amp; Brawns Team</p>
			<div class="footer">&copy; 2025 Brains &amp; Brawns. All rights reserved.</div>
		</div>
	</body>
	</html>`
}
