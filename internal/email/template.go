package email

import "fmt"

const welcomeSubject = "Welcome to AutoOps Task Board!"

// welcomeHTML renders the fixed welcome template for the given recipient
// name. The name is the only parameter; the rest of the message never
// changes.
func welcomeHTML(name string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; background-color: #f4f5f7; margin: 0; padding: 0;">
	<div style="max-width: 600px; margin: 40px auto; background-color: #ffffff; border-radius: 8px; box-shadow: 0 2px 8px rgba(0,0,0,0.1); overflow: hidden;">
		<div style="background: linear-gradient(135deg, #0052cc 0%%, #0065ff 100%%); padding: 30px; text-align: center;">
			<h1 style="color: #ffffff; margin: 0; font-size: 28px;">Welcome to AutoOps!</h1>
		</div>
		<div style="padding: 30px;">
			<h2 style="color: #0052cc; margin-top: 0;">Hello %s!</h2>
			<p style="font-size: 16px; color: #172b4d;">Thank you for joining our team. You can now:</p>
			<ul style="font-size: 16px; color: #42526e; line-height: 2;">
				<li>Create and manage tasks</li>
				<li>Track your work progress</li>
				<li>Collaborate with your team</li>
				<li>Stay organized with our Kanban board</li>
			</ul>
			<div style="margin: 30px 0; padding: 20px; background-color: #f4f5f7; border-radius: 6px; border-left: 4px solid #0052cc;">
				<p style="margin: 0; color: #172b4d; font-weight: 600;">Get started by logging in and creating your first task!</p>
			</div>
			<p style="color: #6b778c; font-size: 14px; margin-top: 30px;">
				This is an automated message. Please do not reply.
			</p>
		</div>
		<div style="background-color: #f4f5f7; padding: 20px; text-align: center; border-top: 1px solid #dfe1e6;">
			<p style="margin: 0; color: #6b778c; font-size: 12px;">
				&copy; 2024 AutoOps Team. All rights reserved.
			</p>
		</div>
	</div>
</body>
</html>`, name)
}
