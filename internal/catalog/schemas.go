package catalog

import "fmt"

// Response schemas, one per design type. Field names are load-bearing: the
// resolution engine discovers image work purely by the "*Prompt" suffix, and
// the rendering side consumes the exact keys declared here.

var websiteSchema = obj(map[string]*Schema{
	"designType": str("Must be the string 'website'."),
	"theme": obj(map[string]*Schema{
		"primaryColor":    str("A sophisticated primary color for interactive elements in hex format (e.g., #6366F1)."),
		"accentColor":     str("An accent color that complements the primary color, for secondary elements, in hex format (e.g., #F59E0B)."),
		"backgroundColor": str("The main background color, often a neutral or dark shade, in hex format (e.g., #0F172A)."),
		"textColor":       str("The main body text color, ensuring high contrast with the background, in hex format (e.g., #E2E8F0)."),
		"headingColor":    str("A specific color for main headings, can be the same as textColor or a slightly brighter shade, in hex format (e.g., #FFFFFF)."),
		"subtleTextColor": str("A more subtle text color for subheadings or less important text, in hex format (e.g., #94A3B8)."),
		"fontFamily": obj(map[string]*Schema{
			"heading": str("The font family for headings (e.g., 'Poppins, sans-serif')."),
			"body":    str("The font family for body text (e.g., 'Inter, sans-serif')."),
		}, "heading", "body"),
		"googleFontUrl": str("The full URL to import the specified Google Fonts (e.g., 'https://fonts.googleapis.com/css2?family=Poppins:wght@700&family=Inter:wght@400;500&display=swap')."),
		"borderRadius":  str("A CSS value for border-radius for elements like buttons and cards (e.g., '1rem')."),
	}, "primaryColor", "accentColor", "backgroundColor", "textColor", "headingColor", "subtleTextColor", "fontFamily", "googleFontUrl", "borderRadius"),
	"header": obj(map[string]*Schema{
		"logoText": str("A short, catchy brand name or logo text for the website."),
		"navLinks": arr(obj(map[string]*Schema{
			"text": str("Navigation link text (e.g., 'Home', 'About')."),
			"href": str("Link URL, use '#' for placeholders."),
		}, "text", "href")),
	}, "logoText", "navLinks"),
	"hero": obj(map[string]*Schema{
		"headline":    str("A powerful, attention-grabbing headline for the hero section."),
		"subheadline": str("A compelling subheadline that elaborates on the value proposition."),
		"ctaButton": obj(map[string]*Schema{
			"text": str("The text for the primary call-to-action button."),
			"href": str("The button's link URL, use '#' for placeholders."),
		}, "text", "href"),
		"imagePrompt": str("A highly descriptive, artistic, and evocative prompt for an AI image generator to create the hero image. Example: 'A hyper-realistic, cinematic shot of a single glowing feather floating in a vast, minimalist concrete gallery, ethereal light rays, award-winning photography, 8k'."),
	}, "headline", "subheadline", "ctaButton", "imagePrompt"),
	"features": obj(map[string]*Schema{
		"title":    str("The main title for the features section."),
		"subtitle": str("A short subtitle explaining the key benefits."),
		"features": arr(obj(map[string]*Schema{
			"icon":        str("A single, relevant emoji for the feature (e.g., '🚀', '💡')."),
			"title":       str("The title of a specific feature."),
			"description": str("A brief, benefit-oriented description of the feature."),
		}, "icon", "title", "description")),
	}, "title", "subtitle", "features"),
	"testimonials": obj(map[string]*Schema{
		"title": str("The title for the testimonials section, like 'What Our Clients Say'."),
		"testimonials": arr(obj(map[string]*Schema{
			"quote":        str("The testimonial text from a satisfied customer."),
			"author":       str("The name of the person giving the testimonial."),
			"role":         str("The role or company of the author (e.g., 'CEO, Innovate Inc.')."),
			"avatarPrompt": str("A descriptive prompt for an AI image generator to create a unique, characterful portrait. Example: 'A warm, friendly portrait of a female startup founder with curly hair, in a sun-drenched office, soft focus, photo-realistic, headshot'."),
		}, "quote", "author", "role", "avatarPrompt")),
	}, "title", "testimonials"),
	"cta": obj(map[string]*Schema{
		"headline":    str("A compelling headline for the final call-to-action section."),
		"subheadline": str("A supporting subheadline to encourage action."),
		"buttonText":  str("The text for the final CTA button."),
	}, "headline", "subheadline", "buttonText"),
	"footer": obj(map[string]*Schema{
		"copyrightText": str("The copyright text for the footer, including the current year."),
		"socialLinks": arr(obj(map[string]*Schema{
			"platform": str("Social media platform name: 'Twitter', 'LinkedIn', 'Instagram', or 'Facebook'."),
			"href":     str("URL for the social media profile."),
		}, "platform", "href")),
	}, "copyrightText", "socialLinks"),
}, "designType", "theme", "header", "hero", "features", "testimonials", "cta", "footer")

func genericImageAssetSchema(designType string) *Schema {
	return obj(map[string]*Schema{
		"designType":  str(fmt.Sprintf("Must be the string '%s'.", designType)),
		"title":       str("A short, catchy title for the generated asset."),
		"imagePrompt": str("A highly detailed, artistic, and specific prompt for an AI image generator to create the final visual. It must include style, mood, composition, and subject details."),
	}, "designType", "title", "imagePrompt")
}

var businessCardSchema = obj(map[string]*Schema{
	"designType":            str("Must be 'business-card'."),
	"name":                  str("The full name of the person."),
	"jobTitle":              str("The person's job title or role."),
	"phone":                 str("The contact phone number."),
	"email":                 str("The contact email address."),
	"website":               str("The personal or company website."),
	"backgroundImagePrompt": str("A prompt for a subtle, professional background image or texture. Avoid photorealism."),
}, "designType", "name", "jobTitle", "phone", "email", "website", "backgroundImagePrompt")

var youtubeCoverSchema = obj(map[string]*Schema{
	"designType":            str("Must be 'youtube-cover'."),
	"headline":              str("A short, high-impact, clickable headline text for the thumbnail."),
	"channelName":           str("The name of the YouTube channel (optional)."),
	"backgroundImagePrompt": str("A prompt for a vibrant, high-contrast, and emotionally engaging background image."),
}, "designType", "headline", "backgroundImagePrompt")

var adCreativeSchema = obj(map[string]*Schema{
	"designType":            str("Must be 'ad-creative'."),
	"headline":              str("The main marketing message or headline of the ad."),
	"callToAction":          str("The call to action text (e.g., 'Shop Now', 'Learn More')."),
	"backgroundImagePrompt": str("A prompt for an eye-catching image that clearly showcases the product or service."),
}, "designType", "headline", "callToAction", "backgroundImagePrompt")

var posterSchema = obj(map[string]*Schema{
	"designType":            str("Must be 'poster'."),
	"title":                 str("The main title of the event or poster."),
	"subtitle":              str("A secondary line of text or subtitle."),
	"eventInfo":             str("Essential information like date, time, and location."),
	"backgroundImagePrompt": str("A prompt for the main visual of the poster, which should be artistic and thematic."),
}, "designType", "title", "subtitle", "eventInfo", "backgroundImagePrompt")

var leadMagnetSchema = obj(map[string]*Schema{
	"designType":            str("Must be 'lead-magnet'."),
	"title":                 str("The main title of the e-book or guide."),
	"author":                str("The name of the author."),
	"backgroundImagePrompt": str("A prompt for a professional and appealing cover design."),
}, "designType", "title", "author", "backgroundImagePrompt")
