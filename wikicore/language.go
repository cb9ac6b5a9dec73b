/*
 * Copyright 2025 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package wikicore

// Language identifies a Wikipedia language edition by its ISO 639-1 code.
// Editions are independent encyclopedias: articles and page IDs are not
// shared across them. The set of supported editions is closed; passing a
// code outside it fails with an invalid-language error.
type Language string

// Supported language editions.
const (
	LanguageEnglish    Language = "en"
	LanguageGerman     Language = "de"
	LanguageFrench     Language = "fr"
	LanguageSpanish    Language = "es"
	LanguageItalian    Language = "it"
	LanguagePortuguese Language = "pt"
	LanguageDutch      Language = "nl"
	LanguagePolish     Language = "pl"
	LanguageRussian    Language = "ru"
	LanguageUkrainian  Language = "uk"
	LanguageSwedish    Language = "sv"
	LanguageJapanese   Language = "ja"
	LanguageChinese    Language = "zh"
	LanguageKorean     Language = "ko"
	LanguageArabic     Language = "ar"
)

// DefaultLanguage is used whenever an operation receives a zero Language
// and the client was configured without one.
const DefaultLanguage = LanguageEnglish

type languageInfo struct {
	nativeName  string
	englishName string
}

var languageOrder = []Language{
	LanguageEnglish,
	LanguageGerman,
	LanguageFrench,
	LanguageSpanish,
	LanguageItalian,
	LanguagePortuguese,
	LanguageDutch,
	LanguagePolish,
	LanguageRussian,
	LanguageUkrainian,
	LanguageSwedish,
	LanguageJapanese,
	LanguageChinese,
	LanguageKorean,
	LanguageArabic,
}

var languageTable = map[Language]languageInfo{
	LanguageEnglish:    {nativeName: "English", englishName: "English"},
	LanguageGerman:     {nativeName: "Deutsch", englishName: "German"},
	LanguageFrench:     {nativeName: "Français", englishName: "French"},
	LanguageSpanish:    {nativeName: "Español", englishName: "Spanish"},
	LanguageItalian:    {nativeName: "Italiano", englishName: "Italian"},
	LanguagePortuguese: {nativeName: "Português", englishName: "Portuguese"},
	LanguageDutch:      {nativeName: "Nederlands", englishName: "Dutch"},
	LanguagePolish:     {nativeName: "Polski", englishName: "Polish"},
	LanguageRussian:    {nativeName: "Русский", englishName: "Russian"},
	LanguageUkrainian:  {nativeName: "Українська", englishName: "Ukrainian"},
	LanguageSwedish:    {nativeName: "Svenska", englishName: "Swedish"},
	LanguageJapanese:   {nativeName: "日本語", englishName: "Japanese"},
	LanguageChinese:    {nativeName: "中文", englishName: "Chinese"},
	LanguageKorean:     {nativeName: "한국어", englishName: "Korean"},
	LanguageArabic:     {nativeName: "العربية", englishName: "Arabic"},
}

// Languages returns all supported language editions in a stable order.
func Languages() []Language {
	out := make([]Language, len(languageOrder))
	copy(out, languageOrder)
	return out
}

// LanguageForCode looks up a language edition by its ISO 639-1 code.
func LanguageForCode(code string) (Language, bool) {
	lang := Language(code)
	_, ok := languageTable[lang]
	if !ok {
		return "", false
	}
	return lang, true
}

// Code returns the ISO 639-1 code of the edition, e.g. "en".
func (l Language) Code() string {
	return string(l)
}

// NativeName returns the edition's display name in its own language,
// e.g. "Deutsch" for German.
func (l Language) NativeName() string {
	return languageTable[l].nativeName
}

// EnglishName returns the edition's display name in English.
func (l Language) EnglishName() string {
	return languageTable[l].englishName
}

func (l Language) String() string {
	return string(l)
}

func (l Language) valid() bool {
	_, ok := languageTable[l]
	return ok
}
